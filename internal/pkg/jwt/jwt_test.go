//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopperToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("round trip returns the same shopper", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour, clock.NewMockClock(now))
		shopperID := uuid.New()

		token, err := svc.GenerateShopperToken(shopperID)
		require.NoError(t, err)

		got, err := svc.ValidateShopperToken(token)
		require.NoError(t, err)
		assert.Equal(t, shopperID, got)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := jwt.NewService("secret", time.Hour, clk)

		token, err := svc.GenerateShopperToken(uuid.New())
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateShopperToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clock.NewMockClock(now))
		token, err := other.GenerateShopperToken(uuid.New())
		require.NoError(t, err)

		svc := jwt.NewService("secret", time.Hour, clock.NewMockClock(now))
		_, err = svc.ValidateShopperToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour, clock.NewMockClock(now))
		_, err := svc.ValidateShopperToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
