package pricing

import (
	"math"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
)

// Config carries the pricing constants. Defaults match the operated business:
// instructors take 15% of revenue, accommodation plus transport cost 200 EUR
// per tour day.
type Config struct {
	InstructorRate float64
	DailyFixedCost int64
}

func DefaultConfig() Config {
	return Config{
		InstructorRate: 0.15,
		DailyFixedCost: 200,
	}
}

// Breakdown is the full pricing picture for one booking. All amounts are
// whole EUR; NetMargin may be negative.
type Breakdown struct {
	UnitPrice      int64 `json:"unit_price"`
	Quantity       int   `json:"quantity"`
	TotalPrice     int64 `json:"total_price"`
	InstructorCost int64 `json:"instructor_cost"`
	FixedCosts     int64 `json:"fixed_costs"`
	NetMargin      int64 `json:"net_margin"`
}

// Quantity returns the billable seat count: always 1 for private packages,
// otherwise the participant count clamped to [1, capacity]. Clamping is a
// last resort; the validator rejects out-of-range counts before this runs.
func Quantity(pkg catalog.Package, participants int) int {
	if pkg.IsPrivate() {
		return 1
	}
	if participants < 1 {
		return 1
	}
	if participants > pkg.Capacity {
		return pkg.Capacity
	}
	return participants
}

// TotalPrice returns the booking revenue for the given party size.
func TotalPrice(pkg catalog.Package, participants int) int64 {
	return pkg.PricePerPerson * int64(Quantity(pkg, participants))
}

// Compute derives the full breakdown for a booking. Pure; no clamping of the
// margin — a private package at default constants lands near or below zero
// and that is the operated pricing, not an error.
func Compute(cfg Config, pkg catalog.Package, participants int) Breakdown {
	quantity := Quantity(pkg, participants)
	revenue := pkg.PricePerPerson * int64(quantity)
	instructorCost := roundMoney(float64(revenue) * cfg.InstructorRate)
	fixedCosts := cfg.DailyFixedCost * int64(pkg.DurationDays)

	return Breakdown{
		UnitPrice:      pkg.PricePerPerson,
		Quantity:       quantity,
		TotalPrice:     revenue,
		InstructorCost: instructorCost,
		FixedCosts:     fixedCosts,
		NetMargin:      revenue - instructorCost - fixedCosts,
	}
}

func roundMoney(x float64) int64 {
	return int64(math.Round(x))
}
