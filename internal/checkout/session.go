package checkout

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/booking"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/pricing"
)

// ExpiryWindow is how long a created session stays payable. The gateway
// enforces it; this package only stamps the absolute deadline.
const ExpiryWindow = 30 * time.Minute

// Config is the static session policy: where the gateway redirects, which
// locale the hosted page uses. None of it is derived from request input.
type Config struct {
	SuccessURL string
	CancelURL  string
	Locale     string
}

// LineItem is the single billable line of a session. UnitAmount is whole EUR.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int
}

// SessionRequest is everything the payment gateway needs to open a hosted
// checkout for one validated booking. AllowQuantityAdjustment stays false:
// the party size was priced and validated here, the gateway UI must not
// change it.
type SessionRequest struct {
	LineItem                LineItem
	SuccessURL              string
	CancelURL               string
	CustomerEmail           string
	Locale                  string
	ClientReference         string
	ExpiresAt               time.Time
	AllowQuantityAdjustment bool
	CollectBillingAddress   bool
	Metadata                map[string]string
}

// Session is the gateway's answer: an opaque id and the redirect URL.
type Session struct {
	ID  string `json:"session_id"`
	URL string `json:"url"`
}

// Metadata keys. Downstream automation (CRM sync, confirmation mail) parses
// these out of the gateway webhook payload; renaming one is a breaking change.
const (
	MetaPackageID       = "package_id"
	MetaPackageName     = "package_name"
	MetaPackageCategory = "package_category"
	MetaPackageCapacity = "package_capacity"
	MetaDurationDays    = "duration_days"
	MetaParticipants    = "participants"
	MetaStartDate       = "start_date"
	MetaEndDate         = "end_date"
	MetaEmail           = "customer_email"
	MetaFirstName       = "customer_first_name"
	MetaLastName        = "customer_last_name"
	MetaPhone           = "customer_phone"
	MetaClaimedTotal    = "claimed_total_price"
	MetaUnitPrice       = "unit_price"
	MetaQuantity        = "quantity"
	MetaTotalPrice      = "total_price"
	MetaInstructorCost  = "instructor_cost"
	MetaFixedCosts      = "fixed_costs"
	MetaNetMargin       = "net_margin"
	MetaBusinessModel   = "business_model"
	MetaCreatedAt       = "created_at"
	MetaCRMSync         = "crm_sync_required"
	MetaEmailConfirm    = "email_confirmation_required"
)

// BusinessModelTag identifies this booking flow to downstream consumers that
// handle several products.
const BusinessModelTag = "windventure_kitesurf"

const dateLayout = "2006-01-02"

// BuildSessionRequest projects a validated booking into a gateway session
// request. It does not re-validate and performs no I/O; callers must have a
// Valid result in hand.
func BuildSessionRequest(req booking.Request, pkg catalog.Package, bd pricing.Breakdown, cfg Config, now time.Time) SessionRequest {
	return SessionRequest{
		LineItem: LineItem{
			Name:       pkg.Name,
			UnitAmount: bd.UnitPrice,
			Quantity:   bd.Quantity,
		},
		SuccessURL:              cfg.SuccessURL,
		CancelURL:               cfg.CancelURL,
		CustomerEmail:           req.Contact.Email,
		Locale:                  cfg.Locale,
		ClientReference:         uuid.NewString(),
		ExpiresAt:               now.Add(ExpiryWindow),
		AllowQuantityAdjustment: false,
		CollectBillingAddress:   false,
		Metadata:                buildMetadata(req, pkg, bd, now),
	}
}

func buildMetadata(req booking.Request, pkg catalog.Package, bd pricing.Breakdown, now time.Time) map[string]string {
	return map[string]string{
		MetaPackageID:       pkg.ID,
		MetaPackageName:     pkg.Name,
		MetaPackageCategory: string(pkg.Category),
		MetaPackageCapacity: strconv.Itoa(pkg.Capacity),
		MetaDurationDays:    strconv.Itoa(pkg.DurationDays),
		MetaParticipants:    strconv.Itoa(req.Participants),
		MetaStartDate:       req.StartDate.Format(dateLayout),
		MetaEndDate:         req.EndDate.Format(dateLayout),
		MetaEmail:           req.Contact.Email,
		MetaFirstName:       req.Contact.FirstName,
		MetaLastName:        req.Contact.LastName,
		MetaPhone:           req.Contact.Phone,
		MetaClaimedTotal:    strconv.FormatFloat(req.ClaimedTotal, 'f', -1, 64),
		MetaUnitPrice:       strconv.FormatInt(bd.UnitPrice, 10),
		MetaQuantity:        strconv.Itoa(bd.Quantity),
		MetaTotalPrice:      strconv.FormatInt(bd.TotalPrice, 10),
		MetaInstructorCost:  strconv.FormatInt(bd.InstructorCost, 10),
		MetaFixedCosts:      strconv.FormatInt(bd.FixedCosts, 10),
		MetaNetMargin:       strconv.FormatInt(bd.NetMargin, 10),
		MetaBusinessModel:   BusinessModelTag,
		MetaCreatedAt:       now.UTC().Format(time.RFC3339),
		MetaCRMSync:         "true",
		MetaEmailConfirm:    "true",
	}
}
