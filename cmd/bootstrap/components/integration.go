package components

import (
	"log/slog"

	"storefront-checkout/internal/infra/webhook"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		fx.Annotate(
			NewWebhookPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewWebhookPublisher(cfg config.Config, logger *slog.Logger) *webhook.Publisher {
	return webhook.NewPublisher(cfg.Webhook, logger)
}
