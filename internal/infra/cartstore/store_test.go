//go:build unit

package cartstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/infra"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisStore(client, time.Hour, logger), mr
}

func sampleCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	require.NoError(t, c.Add(cart.Product{ID: uuid.New(), Name: "Ibuprofen 200mg", Price: decimal.RequireFromString("6.49")}))
	require.NoError(t, c.Add(cart.Product{ID: uuid.New(), Name: "Saline spray", Price: decimal.RequireFromString("4.00")}))
	return c
}

func TestRedisStore_CartRoundTrip(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	shopperID := uuid.New()
	c := sampleCart(t)

	require.NoError(t, store.Save(ctx, shopperID, c))
	assert.True(t, mr.Exists("cart:"+shopperID.String()))
	assert.Equal(t, time.Hour, mr.TTL("cart:"+shopperID.String()))

	loaded, err := store.Load(ctx, shopperID)
	require.NoError(t, err)
	assert.Equal(t, c.Count(), loaded.Count())
	assert.True(t, c.Total().Equal(loaded.Total()))
}

func TestRedisStore_LoadMissingCart(t *testing.T) {
	store, _ := setupStore(t)

	loaded, err := store.Load(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestRedisStore_LoadCorruptCart(t *testing.T) {
	store, mr := setupStore(t)
	shopperID := uuid.New()
	key := "cart:" + shopperID.String()
	require.NoError(t, mr.Set(key, "{not json"))

	loaded, err := store.Load(context.Background(), shopperID)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
	assert.False(t, mr.Exists(key), "corrupt record should be discarded")
}

func TestRedisStore_SaveEmptyCartDeletesKey(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	shopperID := uuid.New()

	require.NoError(t, store.Save(ctx, shopperID, sampleCart(t)))
	require.NoError(t, store.Save(ctx, shopperID, cart.New()))

	assert.False(t, mr.Exists("cart:"+shopperID.String()))
}

func TestRedisStore_SessionID(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()
	shopperID := uuid.New()
	first, second := uuid.New(), uuid.New()

	_, found, err := store.SessionID(ctx, shopperID)
	require.NoError(t, err)
	assert.False(t, found)

	claimed, err := store.ClaimSessionID(ctx, shopperID, first)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = store.ClaimSessionID(ctx, shopperID, second)
	require.NoError(t, err)
	assert.False(t, claimed, "second claim must lose")

	got, found, err := store.SessionID(ctx, shopperID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, first, got)

	require.NoError(t, store.ClearSessionID(ctx, shopperID))
	assert.False(t, mr.Exists("checkout_session:"+shopperID.String()))

	claimed, err = store.ClaimSessionID(ctx, shopperID, second)
	require.NoError(t, err)
	assert.True(t, claimed)
}

func TestRedisStore_CorruptSessionIDIsAbsent(t *testing.T) {
	store, mr := setupStore(t)
	shopperID := uuid.New()
	require.NoError(t, mr.Set("checkout_session:"+shopperID.String(), "not-a-uuid"))

	_, found, err := store.SessionID(context.Background(), shopperID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_ConnectionFailure(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	_, err := store.Load(context.Background(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindStoreFailure))

	_, err = store.ClaimSessionID(context.Background(), uuid.New(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
}
