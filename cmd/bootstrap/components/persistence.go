package components

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/infra/cache"
	"storefront-checkout/internal/infra/cartstore"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/infra/uow"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
	storeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Coupon snapshots
		fx.Annotate(
			NewCouponCache,
			fx.As(new(shared.CouponCache)),
		),
	),
)

var storeModule = fx.Module("persistence/store",
	fx.Provide(
		NewRedisStore,
		func(s *cartstore.RedisStore) shared.CartStore { return s },
		func(s *cartstore.RedisStore) shared.SessionStore { return s },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewRedisStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *cartstore.RedisStore {
	return cartstore.NewRedisStore(client, cfg.Redis.CartTTL, logger)
}

func NewCouponCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*cache.CouponCache, error) {
	c, err := cache.NewCouponCache(context.Background(), cfg.Coupon.CacheTTL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})
	return c, nil
}
