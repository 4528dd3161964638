package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func stripeRequest() SessionRequest {
	return SessionRequest{
		LineItem: LineItem{
			Name:       "Discovery Group Course",
			UnitAmount: 380,
			Quantity:   4,
		},
		SuccessURL:      "https://windventure.fr/booking/success",
		CancelURL:       "https://windventure.fr/booking/cancelled",
		CustomerEmail:   "rider@example.com",
		Locale:          "fr",
		ClientReference: "ref-123",
		ExpiresAt:       time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		Metadata: map[string]string{
			MetaPackageID: "discovery",
			MetaCRMSync:   "true",
		},
	}
}

func TestStripeGatewayCreateSession(t *testing.T) {
	var gotForm url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		gotForm = r.PostForm
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cs_test_123", "url": "https://checkout.stripe.com/pay/cs_test_123"}`))
	}))
	defer server.Close()

	gateway := NewStripeGateway("sk_test_key", WithAPIURL(server.URL))
	session, err := gateway.CreateSession(context.Background(), stripeRequest())
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if session.ID != "cs_test_123" {
		t.Errorf("session id = %q", session.ID)
	}
	if session.URL != "https://checkout.stripe.com/pay/cs_test_123" {
		t.Errorf("session url = %q", session.URL)
	}
	if gotAuth != "Bearer sk_test_key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotForm.Get("mode") != "payment" {
		t.Errorf("mode = %q", gotForm.Get("mode"))
	}
	// Whole EUR become cents on the wire.
	if gotForm.Get("line_items[0][price_data][unit_amount]") != "38000" {
		t.Errorf("unit_amount = %q, want 38000", gotForm.Get("line_items[0][price_data][unit_amount]"))
	}
	if gotForm.Get("line_items[0][quantity]") != "4" {
		t.Errorf("quantity = %q", gotForm.Get("line_items[0][quantity]"))
	}
	if gotForm.Get("line_items[0][adjustable_quantity][enabled]") != "false" {
		t.Errorf("adjustable_quantity = %q, want false", gotForm.Get("line_items[0][adjustable_quantity][enabled]"))
	}
	if gotForm.Get("expires_at") != "1789052400" {
		t.Errorf("expires_at = %q", gotForm.Get("expires_at"))
	}
	if gotForm.Get("metadata[package_id]") != "discovery" {
		t.Errorf("metadata[package_id] = %q", gotForm.Get("metadata[package_id]"))
	}
	if gotForm.Get("client_reference_id") != "ref-123" {
		t.Errorf("client_reference_id = %q", gotForm.Get("client_reference_id"))
	}
}

func TestStripeGatewaySurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error": {"message": "Your card was declined."}}`))
	}))
	defer server.Close()

	gateway := NewStripeGateway("sk_test_key", WithAPIURL(server.URL))
	_, err := gateway.CreateSession(context.Background(), stripeRequest())
	if err == nil {
		t.Fatal("expected gateway error")
	}
	if !strings.Contains(err.Error(), "Your card was declined.") {
		t.Fatalf("expected gateway message surfaced verbatim, got %v", err)
	}
}

func TestStripeGatewayNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gateway := NewStripeGateway("sk_test_key", WithAPIURL(server.URL))
	if _, err := gateway.CreateSession(context.Background(), stripeRequest()); err == nil {
		t.Fatal("expected transport error")
	}
}
