package jwt

import (
	"errors"
	"time"

	"storefront-checkout/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const shopperIssuer = "storefront-checkout"

// ShopperClaims identify an anonymous shopper. They grant nothing beyond
// ownership of one cart and its checkout session.
type ShopperClaims struct {
	ShopperID uuid.UUID `json:"shopper_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	clock         clock.Clock
}

func NewService(secretKey string, tokenDuration time.Duration, clk clock.Clock) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		clock:         clk,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateShopperToken(shopperID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := ShopperClaims{
		ShopperID: shopperID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shopperIssuer,
			Subject:   shopperID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateShopperToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ShopperClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(shopperIssuer),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ShopperClaims)
	if !ok || !token.Valid || claims.ShopperID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}

	return claims.ShopperID, nil
}
