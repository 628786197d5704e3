package components

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewShopperLocks,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponResolver,
		NewCheckoutTracker,
		func(t commands.CheckoutTracker) commands.CartObserver { return t },
		commands.NewCartUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
	),
)

// NewCheckoutTracker stops pending quiescence timers on shutdown so no
// started event is sent after the publisher is gone.
func NewCheckoutTracker(
	lc fx.Lifecycle,
	carts shared.CartStore,
	sessions shared.SessionStore,
	events shared.EventPublisher,
	coupons commands.CouponResolver,
	locks *commands.ShopperLocks,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.CheckoutTracker {
	tracker := commands.NewCheckoutTracker(carts, sessions, events, coupons, locks, clk, cfg.Checkout, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			tracker.Stop()
			return nil
		},
	})
	return tracker
}
