package pricing

import (
	"testing"

	"github.com/Hamza92sy/windventure-kitesurf-sub000/internal/catalog"
)

func groupPackage() catalog.Package {
	return catalog.Package{
		ID:             "discovery",
		Name:           "Discovery Group Course",
		PricePerPerson: 380,
		Capacity:       4,
		DurationDays:   3,
		Category:       catalog.CategoryGroup,
	}
}

func privatePackage() catalog.Package {
	return catalog.Package{
		ID:             "beginner-private",
		Name:           "Beginner Private Coaching",
		PricePerPerson: 720,
		Capacity:       1,
		DurationDays:   3,
		Category:       catalog.CategoryPrivate,
	}
}

func TestTotalPriceScalesWithParticipants(t *testing.T) {
	pkg := groupPackage()
	for n := 1; n <= pkg.Capacity; n++ {
		want := pkg.PricePerPerson * int64(n)
		if got := TotalPrice(pkg, n); got != want {
			t.Fatalf("TotalPrice(%d) = %d, want %d", n, got, want)
		}
	}
	if got := TotalPrice(pkg, 4); got != 1520 {
		t.Fatalf("expected 1520 for four riders, got %d", got)
	}
}

func TestTotalPriceClampsOutOfRangeCounts(t *testing.T) {
	pkg := groupPackage()
	if got := TotalPrice(pkg, 0); got != pkg.PricePerPerson {
		t.Fatalf("expected clamp to one rider, got %d", got)
	}
	if got := TotalPrice(pkg, 99); got != pkg.PricePerPerson*int64(pkg.Capacity) {
		t.Fatalf("expected clamp to capacity, got %d", got)
	}
}

func TestPrivatePackageIgnoresParticipantCount(t *testing.T) {
	pkg := privatePackage()
	for _, n := range []int{-1, 0, 1, 3, 10} {
		if got := TotalPrice(pkg, n); got != 720 {
			t.Fatalf("TotalPrice(%d) = %d, want 720", n, got)
		}
		if got := Quantity(pkg, n); got != 1 {
			t.Fatalf("Quantity(%d) = %d, want 1", n, got)
		}
	}
}

func TestComputeBreakdown(t *testing.T) {
	bd := Compute(DefaultConfig(), groupPackage(), 4)

	if bd.UnitPrice != 380 {
		t.Errorf("unit price = %d, want 380", bd.UnitPrice)
	}
	if bd.Quantity != 4 {
		t.Errorf("quantity = %d, want 4", bd.Quantity)
	}
	if bd.TotalPrice != 1520 {
		t.Errorf("total = %d, want 1520", bd.TotalPrice)
	}
	if bd.InstructorCost != 228 {
		t.Errorf("instructor cost = %d, want 228", bd.InstructorCost)
	}
	if bd.FixedCosts != 600 {
		t.Errorf("fixed costs = %d, want 600", bd.FixedCosts)
	}
	if bd.NetMargin != 692 {
		t.Errorf("net margin = %d, want 692", bd.NetMargin)
	}
}

func TestComputeMarginIsLinearInRevenue(t *testing.T) {
	cfg := DefaultConfig()
	pkg := groupPackage()

	// Fixed duration and rate: margin(n) - margin(1) must equal
	// (1 - rate) * price * (n - 1) for every in-range n.
	base := Compute(cfg, pkg, 1)
	for n := 2; n <= pkg.Capacity; n++ {
		bd := Compute(cfg, pkg, n)
		wantDelta := bd.TotalPrice - base.TotalPrice - (bd.InstructorCost - base.InstructorCost)
		if bd.NetMargin-base.NetMargin != wantDelta {
			t.Fatalf("margin not linear at n=%d: delta %d, want %d", n, bd.NetMargin-base.NetMargin, wantDelta)
		}
		if bd.FixedCosts != base.FixedCosts {
			t.Fatalf("fixed costs changed with party size: %d vs %d", bd.FixedCosts, base.FixedCosts)
		}
	}
}

func TestPrivatePackageMarginMayBeNegative(t *testing.T) {
	// 720 - 108 - 600 = 12 at default constants. The formula is operated
	// business behavior; nothing here may clamp it upward.
	bd := Compute(DefaultConfig(), privatePackage(), 1)
	if bd.NetMargin != 12 {
		t.Fatalf("private margin = %d, want 12", bd.NetMargin)
	}

	longPrivate := privatePackage()
	longPrivate.DurationDays = 5
	bd = Compute(DefaultConfig(), longPrivate, 1)
	if bd.NetMargin >= 0 {
		t.Fatalf("expected negative margin for five-day private, got %d", bd.NetMargin)
	}
}
