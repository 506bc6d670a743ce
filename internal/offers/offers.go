// Package offers implements promotional discounts: the rule engine applied
// to a cart, and the campaign voucher-code set distributed alongside the
// storefront's offer banners.
package offers

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported discount strategies.
type DiscountType string

const (
	// DiscountPercentage applies a percentage-based discount to the subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed applies a fixed monetary discount capped at the subtotal.
	DiscountFixed DiscountType = "fixed"
	// DiscountFreeLowest removes the cost of the cheapest item in the cart.
	DiscountFreeLowest DiscountType = "free_lowest"
)

// ErrInvalidCode is returned when a voucher code is not part of the campaign
// or the cart does not satisfy the rule's minimum item requirement.
var ErrInvalidCode = errors.New("invalid voucher code")

// Rule defines a voucher's discount behaviour and eligibility constraints.
type Rule struct {
	Code         string
	DiscountType DiscountType
	Value        decimal.Decimal
	MinItems     int
	Description  string
}

// Discount holds the computed discount amount and a human-readable description.
type Discount struct {
	Amount      decimal.Decimal
	Description string
}

// Item represents a cart line for discount calculation purposes.
type Item struct {
	ItemID   string
	Price    decimal.Decimal
	Quantity int
}

// Validator resolves a voucher code against a set of cart items and returns
// the computed discount.
type Validator interface {
	Validate(code string, items []Item) (*Discount, error)
}
