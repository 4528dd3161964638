package availability

import (
	"time"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/models"
)

// DefaultDailyCapacity is the operational throughput limit per day across all
// packages: how many riders the school can put on the water at once. It is a
// business constant, deliberately independent of any single package's group
// size.
const DefaultDailyCapacity = 12

// Day is one calendar day's remaining bookable capacity.
type Day struct {
	Date               time.Time `json:"date"`
	BookedParticipants int       `json:"booked_participants"`
	RemainingSlots     int       `json:"remaining_slots"`
	IsFullyBooked      bool      `json:"is_fully_booked"`
}

// Compute reports capacity for every day in [from, to] inclusive, given the
// bookings that overlap the window. A booking occupies the half-open day
// interval [StartDate, EndDate). Pure; callers pass a snapshot and must not
// assume it still holds at write time.
func Compute(records []models.BookingRecord, from, to time.Time, dailyLimit int) []Day {
	from = midnight(from)
	to = midnight(to)
	if to.Before(from) {
		return nil
	}

	days := make([]Day, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		booked := 0
		for _, rec := range records {
			if covers(rec, d) {
				booked += rec.Participants
			}
		}
		remaining := dailyLimit - booked
		days = append(days, Day{
			Date:               d,
			BookedParticipants: booked,
			RemainingSlots:     remaining,
			IsFullyBooked:      remaining <= 0,
		})
	}
	return days
}

// CanAccommodate reports whether a new party of size n fits on every given
// day. This is the rule callers must apply over the days a candidate booking
// would occupy; Compute itself only reports capacity.
func CanAccommodate(days []Day, n int) bool {
	for _, day := range days {
		if day.RemainingSlots < n {
			return false
		}
	}
	return true
}

func covers(rec models.BookingRecord, d time.Time) bool {
	return !d.Before(midnight(rec.StartDate)) && d.Before(midnight(rec.EndDate))
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
