package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix    = "cart:"
	sessionKeyPrefix = "checkout_session:"
)

// RedisStore keeps carts and checkout session ids in Redis. Carts expire
// after ttl of inactivity; session ids live until cleared.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

var (
	_ shared.CartStore    = (*RedisStore)(nil)
	_ shared.SessionStore = (*RedisStore)(nil)
)

// Load returns an empty cart when nothing is stored or the stored record
// cannot be decoded. Corrupt records are removed.
func (s *RedisStore) Load(ctx context.Context, shopperID uuid.UUID) (*cart.Cart, error) {
	key := cartKey(shopperID)

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err, infra.KindStoreFailure)
	}

	var lines []cart.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn("discarding corrupt cart record",
			"shopper_id", shopperID.String(),
			"error", err.Error())
		if delErr := s.client.Del(ctx, key).Err(); delErr != nil {
			s.logger.Warn("failed to delete corrupt cart record",
				"shopper_id", shopperID.String(),
				"error", delErr.Error())
		}
		return cart.New(), nil
	}

	return cart.Reconstruct(lines), nil
}

// Save deletes the key for an empty cart instead of storing "[]".
func (s *RedisStore) Save(ctx context.Context, shopperID uuid.UUID, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, shopperID)
	}

	data, err := json.Marshal(c.Lines())
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart", err, infra.KindStoreFailure)
	}
	if err := s.client.Set(ctx, cartKey(shopperID), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart", err, infra.KindStoreFailure)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, shopperID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(shopperID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart", err, infra.KindStoreFailure)
	}
	return nil
}

func (s *RedisStore) ClaimSessionID(ctx context.Context, shopperID, id uuid.UUID) (bool, error) {
	ok, err := s.client.SetNX(ctx, sessionKey(shopperID), id.String(), 0).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim checkout session id", err, infra.KindStoreFailure)
	}
	return ok, nil
}

// SessionID reports false when no id is stored. An unparsable value is
// treated as absent.
func (s *RedisStore) SessionID(ctx context.Context, shopperID uuid.UUID) (uuid.UUID, bool, error) {
	raw, err := s.client.Get(ctx, sessionKey(shopperID)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, infra.WrapRepoErr("failed to read checkout session id", err, infra.KindStoreFailure)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		s.logger.Warn("ignoring corrupt checkout session id",
			"shopper_id", shopperID.String(),
			"value", raw)
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

func (s *RedisStore) ClearSessionID(ctx context.Context, shopperID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(shopperID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to clear checkout session id", err, infra.KindStoreFailure)
	}
	return nil
}

func cartKey(shopperID uuid.UUID) string {
	return cartKeyPrefix + shopperID.String()
}

func sessionKey(shopperID uuid.UUID) string {
	return sessionKeyPrefix + shopperID.String()
}
