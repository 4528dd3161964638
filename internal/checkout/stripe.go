package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultStripeAPIURL = "https://api.stripe.com/v1/checkout/sessions"

// StripeGateway creates hosted checkout sessions against Stripe's REST API.
// Amounts are converted to cents on the wire; failures are surfaced verbatim,
// never retried or reinterpreted.
type StripeGateway struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
}

type StripeOption func(*StripeGateway)

// WithAPIURL overrides the Stripe endpoint, used by tests.
func WithAPIURL(apiURL string) StripeOption {
	return func(g *StripeGateway) {
		g.apiURL = apiURL
	}
}

func WithHTTPClient(client *http.Client) StripeOption {
	return func(g *StripeGateway) {
		g.httpClient = client
	}
}

func NewStripeGateway(secretKey string, opts ...StripeOption) *StripeGateway {
	g := &StripeGateway{
		apiURL:     defaultStripeAPIURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateSession opens one checkout session for the given request.
func (g *StripeGateway) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("customer_email", req.CustomerEmail)
	form.Set("locale", req.Locale)
	form.Set("client_reference_id", req.ClientReference)
	form.Set("expires_at", strconv.FormatInt(req.ExpiresAt.Unix(), 10))
	form.Set("line_items[0][price_data][currency]", "eur")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.LineItem.UnitAmount*100, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.LineItem.Name)
	form.Set("line_items[0][quantity]", strconv.Itoa(req.LineItem.Quantity))
	form.Set("line_items[0][adjustable_quantity][enabled]", strconv.FormatBool(req.AllowQuantityAdjustment))
	if req.CollectBillingAddress {
		form.Set("billing_address_collection", "required")
	}
	for key, value := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("stripe: build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stripe: create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
			return nil, fmt.Errorf("stripe: create session: status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("stripe: create session: status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var created struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("stripe: decode response: %w", err)
	}
	return &Session{ID: created.ID, URL: created.URL}, nil
}
