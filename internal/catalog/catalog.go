package catalog

import "fmt"

// Category describes how a package sells its seats. Private packages always
// sell exactly one seat regardless of the requested party size.
type Category string

const (
	CategoryPrivate Category = "private"
	CategoryGroup   Category = "group"
	CategoryPremium Category = "premium"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPrivate, CategoryGroup, CategoryPremium:
		return true
	}
	return false
}

// Package is one sellable tour product. Prices are whole EUR.
type Package struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PricePerPerson int64    `json:"price_per_person"`
	Capacity       int      `json:"capacity"`
	DurationDays   int      `json:"duration_days"`
	Category       Category `json:"category"`
	IncludedItems  []string `json:"included_items"`
}

// IsPrivate reports whether the package ignores the requested party size.
func (p Package) IsPrivate() bool {
	return p.Category == CategoryPrivate
}

// Catalog is an immutable package table keyed by id, built once at startup
// and injected wherever package data is needed.
type Catalog struct {
	byID  map[string]Package
	order []string
}

// New validates the given packages and builds a catalog from them.
func New(packages []Package) (*Catalog, error) {
	byID := make(map[string]Package, len(packages))
	order := make([]string, 0, len(packages))
	for _, pkg := range packages {
		if pkg.ID == "" {
			return nil, fmt.Errorf("catalog: package without id")
		}
		if _, exists := byID[pkg.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate package id %q", pkg.ID)
		}
		if pkg.PricePerPerson <= 0 {
			return nil, fmt.Errorf("catalog: package %q has non-positive price", pkg.ID)
		}
		if pkg.Capacity < 1 {
			return nil, fmt.Errorf("catalog: package %q has capacity %d", pkg.ID, pkg.Capacity)
		}
		if pkg.DurationDays < 1 {
			return nil, fmt.Errorf("catalog: package %q has duration %d", pkg.ID, pkg.DurationDays)
		}
		if !pkg.Category.Valid() {
			return nil, fmt.Errorf("catalog: package %q has unknown category %q", pkg.ID, pkg.Category)
		}
		if pkg.IsPrivate() && pkg.Capacity != 1 {
			return nil, fmt.Errorf("catalog: private package %q must have capacity 1", pkg.ID)
		}
		if !pkg.IsPrivate() && pkg.Capacity < 2 {
			return nil, fmt.Errorf("catalog: package %q of category %q must allow at least 2 participants", pkg.ID, pkg.Category)
		}
		byID[pkg.ID] = pkg
		order = append(order, pkg.ID)
	}
	return &Catalog{byID: byID, order: order}, nil
}

// Lookup returns the package for id, if present.
func (c *Catalog) Lookup(id string) (Package, bool) {
	pkg, ok := c.byID[id]
	return pkg, ok
}

// List returns every package in catalog order.
func (c *Catalog) List() []Package {
	packages := make([]Package, 0, len(c.order))
	for _, id := range c.order {
		packages = append(packages, c.byID[id])
	}
	return packages
}

func (c *Catalog) Len() int {
	return len(c.byID)
}

// Default returns the Windventure Dakhla package table.
func Default() *Catalog {
	c, err := New([]Package{
		{
			ID:             "beginner-private",
			Name:           "Beginner Private Coaching",
			PricePerPerson: 720,
			Capacity:       1,
			DurationDays:   3,
			Category:       CategoryPrivate,
			IncludedItems: []string{
				"One-on-one IKO certified instructor",
				"Full kite and harness rental",
				"Radio helmet coaching",
				"Lagoon transfers from Dakhla",
			},
		},
		{
			ID:             "beginner-semi-private",
			Name:           "Beginner Semi-Private",
			PricePerPerson: 550,
			Capacity:       2,
			DurationDays:   3,
			Category:       CategoryPremium,
			IncludedItems: []string{
				"Two riders per IKO certified instructor",
				"Full kite and harness rental",
				"Lagoon transfers from Dakhla",
			},
		},
		{
			ID:             "discovery",
			Name:           "Discovery Group Course",
			PricePerPerson: 380,
			Capacity:       4,
			DurationDays:   3,
			Category:       CategoryGroup,
			IncludedItems: []string{
				"Group coaching, four riders max",
				"Full kite and harness rental",
				"Lagoon transfers from Dakhla",
			},
		},
		{
			ID:             "exploration",
			Name:           "Exploration Downwinder Week",
			PricePerPerson: 520,
			Capacity:       6,
			DurationDays:   5,
			Category:       CategoryGroup,
			IncludedItems: []string{
				"Guided downwinders to Dragon Island",
				"Safety boat support",
				"Full kite and harness rental",
				"Lagoon transfers from Dakhla",
			},
		},
		{
			ID:             "combined",
			Name:           "Combined Progression Week",
			PricePerPerson: 620,
			Capacity:       4,
			DurationDays:   6,
			Category:       CategoryPremium,
			IncludedItems: []string{
				"Coaching plus guided downwinders",
				"Video debrief sessions",
				"Full kite and harness rental",
				"Lagoon transfers from Dakhla",
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
