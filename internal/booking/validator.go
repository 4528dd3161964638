package booking

import (
	"math"
	"strings"
	"time"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/pricing"
)

// PriceTolerance is the absolute EUR difference allowed between the claimed
// total and the computed total, absorbing client-side rounding. A mismatch of
// exactly the tolerance passes.
const PriceTolerance = 1.0

// Validate judges one request against the catalog snapshot. Every check runs;
// the result aggregates all failing reasons so a client can fix its form in
// one round trip. Pure: no I/O, no clock reads (now is supplied by the
// caller), and never an error return — all failure is data.
func Validate(req Request, cat *catalog.Catalog, cfg pricing.Config, now time.Time) Result {
	var reasons []ReasonCode

	pkg, found := cat.Lookup(req.PackageID)
	if !found {
		reasons = append(reasons, ReasonPackageNotFound)
	}

	if req.Participants < 1 {
		reasons = append(reasons, ReasonParticipantCountInvalid)
	} else if found && !pkg.IsPrivate() && req.Participants > pkg.Capacity {
		// Private packages bill one seat no matter the party size, so the
		// range check does not apply to them.
		reasons = append(reasons, ReasonParticipantCountOutOfRange)
	}

	if found {
		computed := pricing.TotalPrice(pkg, req.Participants)
		if math.Abs(req.ClaimedTotal-float64(computed)) > PriceTolerance {
			reasons = append(reasons, ReasonPriceMismatch)
		}
	}

	today := midnight(now)
	if req.StartDate.Before(today) {
		reasons = append(reasons, ReasonStartDateInPast)
	}
	if !req.EndDate.After(req.StartDate) {
		reasons = append(reasons, ReasonEndDateNotAfterStart)
	}

	email := strings.TrimSpace(req.Contact.Email)
	if email == "" || !strings.Contains(email, "@") {
		reasons = append(reasons, ReasonContactEmailInvalid)
	}
	if strings.TrimSpace(req.Contact.FirstName) == "" || strings.TrimSpace(req.Contact.LastName) == "" {
		reasons = append(reasons, ReasonContactNameMissing)
	}
	if strings.TrimSpace(req.Contact.Phone) == "" {
		reasons = append(reasons, ReasonContactPhoneMissing)
	}

	return Result{Valid: len(reasons) == 0, Errors: reasons}
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
