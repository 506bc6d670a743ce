package store

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// metrics holds the engine's OTel counters. A nil *metrics is valid and
// records nothing, so instrumentation stays optional.
type metrics struct {
	cartAdditions   metric.Int64Counter
	bookingsCreated metric.Int64Counter
	ordersCompleted metric.Int64Counter
}

// WithMeterProvider instruments the store's mutation hot paths with counters
// from the given provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(s *Store) {
		meter := mp.Meter("churro-storefront/store")

		m := &metrics{}
		m.cartAdditions, _ = meter.Int64Counter("store.cart.additions",
			metric.WithDescription("Units added to the cart"))
		m.bookingsCreated, _ = meter.Int64Counter("store.bookings.created",
			metric.WithDescription("Bookings appended to history"))
		m.ordersCompleted, _ = meter.Int64Counter("store.orders.completed",
			metric.WithDescription("Orders appended to history"))
		s.metrics = m
	}
}

func (m *metrics) cartAddition() {
	if m == nil {
		return
	}
	m.cartAdditions.Add(context.Background(), 1)
}

func (m *metrics) booking() {
	if m == nil {
		return
	}
	m.bookingsCreated.Add(context.Background(), 1)
}

func (m *metrics) orderCompleted() {
	if m == nil {
		return
	}
	m.ordersCompleted.Add(context.Background(), 1)
}
