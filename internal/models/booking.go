package models

import "time"

// BookingRecord is one confirmed booking as persisted in the record store.
// StartDate/EndDate are whole days; the stay occupies [StartDate, EndDate).
type BookingRecord struct {
	ID           int64     `json:"id"`
	Reference    string    `json:"reference"`
	PackageID    string    `json:"package_id"`
	Participants int       `json:"participants"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	SessionID    *string   `json:"session_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
