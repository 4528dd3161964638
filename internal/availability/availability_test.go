package availability

import (
	"testing"
	"time"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/models"
)

func day(d int) time.Time {
	return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC)
}

func record(start, end, participants int) models.BookingRecord {
	return models.BookingRecord{
		PackageID:    "discovery",
		Participants: participants,
		StartDate:    day(start),
		EndDate:      day(end),
		Status:       "confirmed",
	}
}

func TestComputeEmptyCalendar(t *testing.T) {
	days := Compute(nil, day(1), day(3), DefaultDailyCapacity)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for _, d := range days {
		if d.BookedParticipants != 0 {
			t.Fatalf("expected empty day, got %+v", d)
		}
		if d.RemainingSlots != DefaultDailyCapacity {
			t.Fatalf("expected %d slots, got %d", DefaultDailyCapacity, d.RemainingSlots)
		}
		if d.IsFullyBooked {
			t.Fatalf("empty day flagged full: %+v", d)
		}
	}
}

func TestComputeStayIntervalIsHalfOpen(t *testing.T) {
	// A 3-day course starting on the 5th occupies the 5th, 6th and 7th.
	records := []models.BookingRecord{record(5, 8, 4)}
	days := Compute(records, day(4), day(8), 12)

	wantBooked := map[int]int{4: 0, 5: 4, 6: 4, 7: 4, 8: 0}
	for _, d := range days {
		if got := wantBooked[d.Date.Day()]; d.BookedParticipants != got {
			t.Fatalf("day %d booked = %d, want %d", d.Date.Day(), d.BookedParticipants, got)
		}
	}
}

func TestComputeSumsOverlappingBookings(t *testing.T) {
	records := []models.BookingRecord{
		record(5, 8, 4),
		record(6, 9, 6),
		record(7, 8, 2),
	}
	days := Compute(records, day(7), day(7), 12)
	if len(days) != 1 {
		t.Fatalf("expected single day, got %d", len(days))
	}
	if days[0].BookedParticipants != 12 {
		t.Fatalf("expected 12 booked, got %d", days[0].BookedParticipants)
	}
	if days[0].RemainingSlots != 0 {
		t.Fatalf("expected 0 remaining, got %d", days[0].RemainingSlots)
	}
	if !days[0].IsFullyBooked {
		t.Fatal("expected fully booked day")
	}
}

func TestAddingBookingDecreasesRemainingByItsSize(t *testing.T) {
	before := Compute([]models.BookingRecord{record(5, 8, 3)}, day(5), day(7), 12)
	after := Compute([]models.BookingRecord{record(5, 8, 3), record(5, 8, 5)}, day(5), day(7), 12)

	for i := range before {
		if after[i].RemainingSlots != before[i].RemainingSlots-5 {
			t.Fatalf("day %d remaining %d -> %d, want drop of 5",
				before[i].Date.Day(), before[i].RemainingSlots, after[i].RemainingSlots)
		}
		if before[i].IsFullyBooked && !after[i].IsFullyBooked {
			t.Fatalf("day %d went from full to open after adding a booking", before[i].Date.Day())
		}
	}
}

func TestComputeCanOverdraw(t *testing.T) {
	// The calculator reports, it does not reject: an overbooked store shows
	// negative remaining slots.
	days := Compute([]models.BookingRecord{record(5, 6, 15)}, day(5), day(5), 12)
	if days[0].RemainingSlots != -3 {
		t.Fatalf("expected -3 remaining, got %d", days[0].RemainingSlots)
	}
	if !days[0].IsFullyBooked {
		t.Fatal("expected fully booked flag")
	}
}

func TestComputeInvertedRange(t *testing.T) {
	if days := Compute(nil, day(5), day(3), 12); days != nil {
		t.Fatalf("expected nil for inverted range, got %v", days)
	}
}

func TestCanAccommodate(t *testing.T) {
	days := Compute([]models.BookingRecord{record(5, 8, 10)}, day(5), day(7), 12)

	if !CanAccommodate(days, 2) {
		t.Fatal("expected room for a pair")
	}
	if CanAccommodate(days, 3) {
		t.Fatal("expected no room for three")
	}
	if !CanAccommodate(nil, 4) {
		t.Fatal("an empty window blocks nothing")
	}
}
