//go:build unit || e2e

package shoppertest

import (
	"testing"
	"time"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type TokenHelper struct {
	cfg config.ShopperConfig
}

func NewTokenHelper(cfg config.ShopperConfig) *TokenHelper {
	return &TokenHelper{cfg: cfg}
}

func (h *TokenHelper) Service() *jwt.Service {
	return jwt.NewService(h.cfg.TokenSecret, h.cfg.TokenDuration, clock.NewRealClock())
}

func (h *TokenHelper) GenerateToken(t *testing.T, shopperID uuid.UUID) string {
	t.Helper()
	token, err := h.Service().GenerateShopperToken(shopperID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry already lies in the past.
func (h *TokenHelper) CreateExpiredToken(t *testing.T, shopperID uuid.UUID) string {
	t.Helper()
	issuedAt := time.Now().Add(-2 * h.cfg.TokenDuration)
	service := jwt.NewService(h.cfg.TokenSecret, h.cfg.TokenDuration, clock.NewMockClock(issuedAt))
	token, err := service.GenerateShopperToken(shopperID)
	require.NoError(t, err)
	return token
}
