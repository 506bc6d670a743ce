package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/churro-storefront/internal/auth"
	"github.com/xenking/churro-storefront/internal/catalog"
	"github.com/xenking/churro-storefront/internal/catalog/data"
	"github.com/xenking/churro-storefront/internal/checkout"
	"github.com/xenking/churro-storefront/internal/offers"
	"github.com/xenking/churro-storefront/internal/payment"
	"github.com/xenking/churro-storefront/internal/store"
)

// Run creates all dependencies and walks a scripted storefront session
// through the store engine. It is the single wiring point for the demo
// binary; the engine itself never depends on anything here.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Loading catalog")

	cat, err := catalog.Load()
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	lg.Info("Catalog loaded",
		zap.Int("items", len(cat.Items)),
		zap.Int("locations", len(cat.Locations)),
		zap.Int("offers", len(cat.Offers)),
	)

	vouchers, err := offers.LoadVouchers(data.Vouchers)
	if err != nil {
		return errors.Wrap(err, "load vouchers")
	}
	lg.Info("Voucher campaign loaded", zap.Int("codes", vouchers.Len()))

	st := store.New(cat, store.WithMeterProvider(m.MeterProvider()))
	if cfg.Location != "" {
		loc, err := cat.Location(cfg.Location)
		if err != nil {
			return errors.Wrap(err, "select startup location")
		}
		st.SetLocation(loc)
	}

	flow := checkout.NewFlow(st, payment.NewMock(), logNotifier{},
		checkout.WithVouchers(vouchers),
	)

	session := demoSession{
		store:  st,
		auth:   auth.NewSimulated(),
		flow:   flow,
		config: cfg,
	}
	return session.run(zctx.Base(ctx, lg))
}

// logNotifier routes toast notifications to the context logger.
type logNotifier struct{}

func (logNotifier) Notify(ctx context.Context, n checkout.Notification) {
	lg := zctx.From(ctx)
	if n.Destructive {
		lg.Warn(n.Title, zap.String("description", n.Description))
		return
	}
	lg.Info(n.Title, zap.String("description", n.Description))
}
