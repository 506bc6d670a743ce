// Package checkout implements the checkout flow state machine that sits in
// front of the store engine: details -> payment -> success. The flow owns
// only UI-session state (contact fields, voucher code, current step); all
// business state lives in the engine, which the flow drives at each
// transition.
package checkout

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/churro-storefront/internal/offers"
	"github.com/xenking/churro-storefront/internal/payment"
	"github.com/xenking/churro-storefront/internal/store"
)

// State is a checkout flow step.
type State string

const (
	// StateDetails collects the order summary and contact fields.
	StateDetails State = "details"
	// StatePayment awaits the simulated payment.
	StatePayment State = "payment"
	// StateSuccess is terminal for the checkout session.
	StateSuccess State = "success"
)

// Transition errors. ErrAuthRequired is the "auth required" sub-state of
// the details step: the flow stays in details and the caller opens the
// sign-in overlay.
var (
	ErrAuthRequired   = errors.New("sign in required")
	ErrMissingContact = errors.New("delivery address and phone number required")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrWrongState     = errors.New("operation not valid in current state")
)

// Contact holds the checkout contact fields.
type Contact struct {
	Phone   string
	Address string
}

// Notification is a user-facing toast message.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier is the toast mechanism. Validation failures and confirmations
// are reported through it; the engine itself never notifies.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(context.Context, Notification) {}

// Flow is one checkout session. It is not safe for concurrent use; one
// flow belongs to one user session.
type Flow struct {
	store    *store.Store
	gateway  payment.Gateway
	notifier Notifier
	vouchers offers.Validator

	state   State
	contact Contact
	voucher string
}

// FlowOption configures a Flow.
type FlowOption func(*Flow)

// WithVouchers enables voucher-code discounts during payment.
func WithVouchers(v offers.Validator) FlowOption {
	return func(f *Flow) { f.vouchers = v }
}

// NewFlow creates a checkout flow over the given engine and gateway,
// starting in the details state.
func NewFlow(s *store.Store, gw payment.Gateway, n Notifier, opts ...FlowOption) *Flow {
	if n == nil {
		n = NopNotifier{}
	}
	f := &Flow{
		store:    s,
		gateway:  gw,
		notifier: n,
		state:    StateDetails,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current flow step.
func (f *Flow) State() State {
	return f.state
}

// SetContact records the contact fields entered in the details step.
func (f *Flow) SetContact(c Contact) {
	f.contact = c
}

// SetVoucher records a voucher code to redeem at payment. Validation
// happens in Pay; an invalid code falls back to no discount.
func (f *Flow) SetVoucher(code string) {
	f.voucher = code
}

// PlaceOrder attempts the details -> payment transition. It requires an
// authenticated session, a non-empty cart, and populated contact fields;
// on failure the flow stays in details, the engine is untouched, and the
// user is notified.
func (f *Flow) PlaceOrder(ctx context.Context) error {
	if f.state != StateDetails {
		return ErrWrongState
	}
	if !f.store.IsAuthenticated() {
		return ErrAuthRequired
	}
	if f.store.CartCount() == 0 {
		f.notifier.Notify(ctx, Notification{
			Title:       "Cart is empty",
			Description: "Add something to your cart before checking out",
			Destructive: true,
		})
		return ErrEmptyCart
	}
	if f.contact.Phone == "" || f.contact.Address == "" {
		f.notifier.Notify(ctx, Notification{
			Title:       "Missing details",
			Description: "Please fill in your delivery address and phone number",
			Destructive: true,
		})
		return ErrMissingContact
	}

	f.state = StatePayment
	return nil
}

// Pay attempts the payment -> success transition: resolve the voucher
// discount, charge the gateway, then record the order and clear the cart
// through the engine's single compound operation.
func (f *Flow) Pay(ctx context.Context) error {
	if f.state != StatePayment {
		return ErrWrongState
	}

	order := f.store.OrderSnapshot()

	if discount := f.resolveDiscount(ctx); discount != nil {
		order.Total = order.Total.Sub(discount.Amount)
		if order.Total.IsNegative() {
			order.Total = decimal.Zero
		}
	}

	// A fully-discounted order owes nothing, so there is no charge to make.
	if order.Total.IsPositive() {
		if err := f.gateway.Charge(ctx, order.Total); err != nil {
			f.notifier.Notify(ctx, Notification{
				Title:       "Payment failed",
				Description: "Your payment could not be processed. Please try again.",
				Destructive: true,
			})
			return errors.Wrap(err, "charge")
		}
	}

	f.store.CompleteCheckout(order)
	f.state = StateSuccess

	f.notifier.Notify(ctx, Notification{
		Title:       "Order placed!",
		Description: "Your order has been placed successfully. Check your profile for details.",
	})
	return nil
}

// resolveDiscount validates the session voucher against the current cart.
// An invalid or absent code yields no discount.
func (f *Flow) resolveDiscount(ctx context.Context) *offers.Discount {
	if f.voucher == "" || f.vouchers == nil {
		return nil
	}

	cart := f.store.Cart()
	items := make([]offers.Item, len(cart))
	for i, line := range cart {
		items[i] = offers.Item{
			ItemID:   line.Item.ID,
			Price:    line.UnitPrice(),
			Quantity: line.Quantity,
		}
	}

	discount, err := f.vouchers.Validate(f.voucher, items)
	if err != nil {
		f.notifier.Notify(ctx, Notification{
			Title:       "Voucher not applied",
			Description: "That voucher code is not valid for this order",
			Destructive: true,
		})
		return nil
	}
	return discount
}

// Close resets the flow to details for the next checkout session. Success
// is terminal only for the finished session; closing begins a new one with
// cleared contact fields.
func (f *Flow) Close() {
	f.state = StateDetails
	f.contact = Contact{}
	f.voucher = ""
}
