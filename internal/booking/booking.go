package booking

import "time"

// Contact identifies the person paying for the booking.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Request is one candidate booking as submitted by a client. Dates are whole
// days at midnight UTC; ClaimedTotal is the price the client saw, cross-checked
// against the pricing engine. EndDate may be zero, in which case the service
// derives it from the package duration.
type Request struct {
	PackageID    string
	Participants int
	StartDate    time.Time
	EndDate      time.Time
	Contact      Contact
	ClaimedTotal float64
}

// ReasonCode is a machine-readable validation failure. The set of codes and
// their string forms are a stable contract with API clients.
type ReasonCode string

const (
	ReasonPackageNotFound            ReasonCode = "PACKAGE_NOT_FOUND"
	ReasonParticipantCountInvalid    ReasonCode = "PARTICIPANT_COUNT_INVALID"
	ReasonParticipantCountOutOfRange ReasonCode = "PARTICIPANT_COUNT_OUT_OF_RANGE"
	ReasonPriceMismatch              ReasonCode = "PRICE_MISMATCH"
	ReasonStartDateInPast            ReasonCode = "START_DATE_IN_PAST"
	ReasonEndDateNotAfterStart       ReasonCode = "END_DATE_NOT_AFTER_START"
	ReasonContactEmailInvalid        ReasonCode = "CONTACT_EMAIL_INVALID"
	ReasonContactNameMissing         ReasonCode = "CONTACT_NAME_MISSING"
	ReasonContactPhoneMissing        ReasonCode = "CONTACT_PHONE_MISSING"
)

// Result is the verdict for one Request. Errors holds every failing reason,
// in check order; it is empty exactly when Valid is true.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []ReasonCode `json:"errors"`
}

func (r Result) Has(code ReasonCode) bool {
	for _, c := range r.Errors {
		if c == code {
			return true
		}
	}
	return false
}
