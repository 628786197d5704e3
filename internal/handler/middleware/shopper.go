package middleware

import (
	"log/slog"
	"net/http"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/pkg/cookie"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ShopperTokenHeader = "X-Shopper-Token"

	shopperIDKey = "shopper_id"
)

type ShopperMiddleware struct {
	tokens *jwt.Service
	cfg    config.ShopperConfig
	logger *slog.Logger
}

func NewShopperMiddleware(tokens *jwt.Service, cfg config.Config, logger *slog.Logger) *ShopperMiddleware {
	return &ShopperMiddleware{
		tokens: tokens,
		cfg:    cfg.Shopper,
		logger: logger,
	}
}

// Identify resolves the anonymous shopper from the cookie or the
// X-Shopper-Token header. Requests without a valid token get a fresh
// identity, returned both as a cookie and as a response header.
func (m *ShopperMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetShopperToken(c)
		if token == "" {
			token = c.GetHeader(ShopperTokenHeader)
		}

		if token != "" {
			shopperID, err := m.tokens.ValidateShopperToken(token)
			if err == nil {
				c.Set(shopperIDKey, shopperID)
				c.Next()
				return
			}
			m.logger.Debug("discarding shopper token", "error", err.Error())
		}

		shopperID := uuid.New()
		issued, err := m.tokens.GenerateShopperToken(shopperID)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue shopper identity", nil)
			return
		}

		cookie.SetShopperCookie(c, m.cfg, issued, m.tokens.TokenDuration())
		c.Header(ShopperTokenHeader, issued)
		c.Set(shopperIDKey, shopperID)
		c.Next()
	}
}

func GetShopperID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(shopperIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
