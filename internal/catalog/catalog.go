// Package catalog holds the static storefront data: the menu, the pickup
// locations, and the promotional offers. Everything here is immutable after
// Load; consumers only ever read it.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// MenuItem represents a catalog item available for purchase.
type MenuItem struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	Image        string
	Category     string
	IsVeg        bool
	IsNew        bool
	IsBestseller bool
	IsExclusive  bool
	Rating       float64
	// Availability lists the location IDs the item is sellable at.
	Availability   []string
	RemainingStock int
	Ingredients    []string
	Macros         *Macros
	Images         []string
	Variants       []Variant
}

// Macros holds the nutritional breakdown of a menu item.
type Macros struct {
	Calories int
	Protein  int
	Carbs    int
	Fat      int
}

// Variant is a named price variant of a menu item (e.g. "Salted", "Paprika").
type Variant struct {
	Name  string
	Price decimal.Decimal
}

// VariantPrice returns the price of the named variant. It reports false when
// the item has no variant with that name.
func (m MenuItem) VariantPrice(name string) (decimal.Decimal, bool) {
	for _, v := range m.Variants {
		if v.Name == name {
			return v.Price, true
		}
	}
	return decimal.Zero, false
}

// AvailableAt reports whether the item is sellable at the given location.
func (m MenuItem) AvailableAt(locationID string) bool {
	for _, id := range m.Availability {
		if id == locationID {
			return true
		}
	}
	return false
}

// Location is a pickup branch.
type Location struct {
	ID      string
	Name    string
	Address string
	Timings string
	// Default marks the branch selected at startup. Exactly one location
	// in the catalog carries it.
	Default bool
}

// Offer is a promotional banner, optionally linked to a menu item and a
// voucher code redeemable at checkout.
type Offer struct {
	ID          string
	Title       string
	Description string
	Image       string
	Badge       string
	LinkedItem  string
	Code        string
}

// Catalog is the full static data set loaded at process start.
type Catalog struct {
	Items     []MenuItem
	Locations []Location
	Offers    []Offer
}

// AvailableAt returns the items sellable at the given location, preserving
// catalog order. The returned slice is freshly allocated; the catalog is
// never mutated.
func (c *Catalog) AvailableAt(locationID string) []MenuItem {
	items := make([]MenuItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.AvailableAt(locationID) {
			items = append(items, item)
		}
	}
	return items
}

// Item returns the menu item with the given id.
func (c *Catalog) Item(id string) (MenuItem, error) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, nil
		}
	}
	return MenuItem{}, errors.Wrapf(ErrNotFound, "item %q", id)
}

// Location returns the location with the given id.
func (c *Catalog) Location(id string) (Location, error) {
	for _, loc := range c.Locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return Location{}, errors.Wrapf(ErrNotFound, "location %q", id)
}

// DefaultLocation returns the location marked default in the data, falling
// back to the first location when none is marked. A catalog with no
// locations yields the zero Location.
func (c *Catalog) DefaultLocation() Location {
	for _, loc := range c.Locations {
		if loc.Default {
			return loc
		}
	}
	if len(c.Locations) == 0 {
		return Location{}
	}
	return c.Locations[0]
}
