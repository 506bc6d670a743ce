package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/churro-storefront/internal/auth"
	"github.com/xenking/churro-storefront/internal/checkout"
	"github.com/xenking/churro-storefront/internal/store"
)

// demoSession is the scripted presentation layer: it only reads engine
// state and forwards user intents as operation calls, the same contract a
// real UI would have.
type demoSession struct {
	store  *store.Store
	auth   auth.Authenticator
	flow   *checkout.Flow
	config *Config
}

func (s demoSession) run(ctx context.Context) error {
	lg := zctx.From(ctx)

	loc := s.store.SelectedLocation()
	lg.Info("Session started",
		zap.String("location", loc.Name),
		zap.String("timings", loc.Timings),
	)

	// Browse the menu at the selected branch.
	available := s.store.AvailableItems()
	lg.Info("Menu browsed", zap.Int("available_items", len(available)))

	// Fill the cart: two portions of churros and both papas variants.
	churros, err := s.store.Catalog().Item("churros-3")
	if err != nil {
		return errors.Wrap(err, "demo item")
	}
	papas, err := s.store.Catalog().Item("papas-locas")
	if err != nil {
		return errors.Wrap(err, "demo item")
	}

	s.store.AddToCart(churros, "")
	s.store.AddToCart(churros, "")
	s.store.AddToCart(papas, "Paprika")
	s.store.AddToCart(papas, "Salted")

	lg.Info("Cart filled",
		zap.Int("lines", len(s.store.Cart())),
		zap.Int("units", s.store.CartCount()),
		zap.String("total", s.store.CartTotal().String()),
	)

	// Book a table for the evening.
	booking := s.store.AddBooking(store.Booking{
		Type:     store.BookingTable,
		Date:     "30 Aug 2026",
		Time:     "7:00 PM",
		Guests:   2,
		Location: loc.Name,
	})
	lg.Info("Table booked", zap.String("booking_id", booking.ID))

	// Sign in; checkout requires an authenticated session.
	user, err := s.auth.Authenticate(ctx, s.config.Demo.Name, s.config.Demo.Email, "demo-password")
	if err != nil {
		return errors.Wrap(err, "sign in")
	}
	s.store.SetUser(user)
	lg.Info("Signed in", zap.String("user", user.Name))

	// Walk the checkout state machine to completion.
	s.flow.SetContact(checkout.Contact{
		Phone:   s.config.Demo.Phone,
		Address: loc.Address,
	})
	if s.config.Voucher != "" {
		s.flow.SetVoucher(s.config.Voucher)
	}

	if err := s.flow.PlaceOrder(ctx); err != nil {
		return errors.Wrap(err, "place order")
	}
	if err := s.flow.Pay(ctx); err != nil {
		return errors.Wrap(err, "pay")
	}

	orders := s.store.Orders()
	last := orders[len(orders)-1]
	lg.Info("Checkout complete",
		zap.String("order_id", last.ID),
		zap.String("total", last.Total.String()),
		zap.Int("cart_units_after", s.store.CartCount()),
	)

	s.flow.Close()
	return nil
}
