package components

import (
	"storefront-checkout/internal/handler"
	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewCheckoutHandler,
		middleware.NewShopperMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(cart *api.CartHandler, coupon *api.CouponHandler, checkout *api.CheckoutHandler) handler.Handlers {
	return handler.Handlers{Cart: cart, Coupon: coupon, Checkout: checkout}
}
