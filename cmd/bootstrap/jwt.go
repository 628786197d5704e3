package bootstrap

import (
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.Shopper.TokenDuration <= 0 {
		panic("invalid SHOPPER_TOKEN_DURATION: must be positive")
	}
	return jwt.NewService(cfg.Shopper.TokenSecret, cfg.Shopper.TokenDuration, clk)
}
