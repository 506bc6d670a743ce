// Package payment provides the storefront's payment capability. The shipped
// gateway is a demo mock; the interface exists so a real processor can be
// substituted without touching the checkout flow.
package payment

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrDeclined is returned when the simulated gateway rejects a charge.
var ErrDeclined = errors.New("payment declined")

// Gateway charges the customer for an order total.
type Gateway interface {
	Charge(ctx context.Context, amount decimal.Decimal) error
}

var _ Gateway = (*Mock)(nil)

// Mock is a demo gateway. It accepts every charge unless configured to
// decline, and respects context cancellation like a real client would.
type Mock struct {
	declineAll bool
}

// NewMock returns a gateway that approves every charge.
func NewMock() *Mock {
	return &Mock{}
}

// NewDeclining returns a gateway that declines every charge. Used to
// exercise the checkout failure path.
func NewDeclining() *Mock {
	return &Mock{declineAll: true}
}

// Charge simulates processing a payment. Non-positive amounts are rejected.
func (m *Mock) Charge(ctx context.Context, amount decimal.Decimal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrap(ErrDeclined, "amount must be positive")
	}
	if m.declineAll {
		return errors.Wrap(ErrDeclined, "insufficient funds")
	}
	return nil
}
