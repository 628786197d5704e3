package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"storefront-checkout/internal/usecase/shared"

	"github.com/allegro/bigcache/v3"
)

// CouponCache is an in-process cache of coupon lookups. Entries expire after
// the configured TTL so admin-side edits become visible without a restart.
type CouponCache struct {
	store  *bigcache.BigCache
	logger *slog.Logger
}

var _ shared.CouponCache = (*CouponCache)(nil)

func NewCouponCache(ctx context.Context, ttl time.Duration, logger *slog.Logger) (*CouponCache, error) {
	cfg := bigcache.DefaultConfig(ttl)
	cfg.CleanWindow = ttl
	cfg.Shards = 64
	cfg.Verbose = false

	store, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &CouponCache{store: store, logger: logger}, nil
}

func (c *CouponCache) Get(code string) (*shared.CouponSnapshot, bool) {
	data, err := c.store.Get(code)
	if err != nil {
		if !errors.Is(err, bigcache.ErrEntryNotFound) {
			c.logger.Warn("coupon cache read failed", "code", code, "error", err.Error())
		}
		return nil, false
	}

	var snap shared.CouponSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Warn("dropping undecodable coupon cache entry", "code", code, "error", err.Error())
		c.Delete(code)
		return nil, false
	}
	return &snap, true
}

func (c *CouponCache) Set(code string, snap *shared.CouponSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("failed to encode coupon for cache", "code", code, "error", err.Error())
		return
	}
	if err := c.store.Set(code, data); err != nil {
		c.logger.Warn("coupon cache write failed", "code", code, "error", err.Error())
	}
}

func (c *CouponCache) Delete(code string) {
	if err := c.store.Delete(code); err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		c.logger.Warn("coupon cache delete failed", "code", code, "error", err.Error())
	}
}

func (c *CouponCache) Close() error {
	return c.store.Close()
}
