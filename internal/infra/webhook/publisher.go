package webhook

import (
	"context"
	"log/slog"
	"time"

	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

const (
	EventCheckoutStarted   = "checkout_started"
	EventPurchaseCompleted = "purchase_completed"

	secretHeader = "X-Webhook-Secret"
)

var ErrDeliveryFailed = errs.New("webhook delivery failed")

// Publisher relays checkout events to the configured endpoint. Delivery is
// best effort: one attempt per event, short-circuited while the relay keeps
// failing.
type Publisher struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker[*resty.Response]
	url     string
	logger  *slog.Logger
}

var _ shared.EventPublisher = (*Publisher)(nil)

func NewPublisher(cfg config.WebhookConfig, logger *slog.Logger) *Publisher {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "storefront-checkout")
	if cfg.Secret != "" {
		client.SetHeader(secretHeader, cfg.Secret)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 1
	}

	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        "webhook",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("webhook circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	return &Publisher{client: client, breaker: breaker, url: cfg.URL, logger: logger}
}

func (p *Publisher) CheckoutStarted(ctx context.Context, evt shared.CheckoutStartedEvent) error {
	return p.post(ctx, EventCheckoutStarted, toCheckoutStartedPayload(evt))
}

func (p *Publisher) PurchaseCompleted(ctx context.Context, evt shared.PurchaseCompletedEvent) error {
	return p.post(ctx, EventPurchaseCompleted, toPurchaseCompletedPayload(evt))
}

func (p *Publisher) post(ctx context.Context, event string, body any) error {
	start := time.Now()
	resp, err := p.breaker.Execute(func() (*resty.Response, error) {
		resp, err := p.client.R().
			SetContext(ctx).
			SetBody(body).
			Post(p.url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return resp, errs.Newf("relay responded with status %d", resp.StatusCode())
		}
		return resp, nil
	})
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "failed to deliver %s", event), ErrDeliveryFailed)
	}

	p.logger.Debug("webhook delivered",
		"event", event,
		"status", resp.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
