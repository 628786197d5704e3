package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/uow.go -package=mock_shared

import (
	"context"
	"time"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/pricing"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Redemptions() RedemptionRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	ActiveDiscountsForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]pricing.Discount, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
}

type RedemptionRepository interface {
	// Record reports false when the coupon's redemption limit was already reached.
	Record(ctx context.Context, tx sqlc.DBTX, params RedemptionParams) (bool, error)
}

// CartStore persists one cart per shopper. Load never fails on corrupt data;
// it returns an empty cart instead.
type CartStore interface {
	Load(ctx context.Context, shopperID uuid.UUID) (*cart.Cart, error)
	Save(ctx context.Context, shopperID uuid.UUID, c *cart.Cart) error
	Delete(ctx context.Context, shopperID uuid.UUID) error
}

// SessionStore holds the persisted checkout session id of each shopper.
type SessionStore interface {
	// ClaimSessionID stores id only when no id is stored yet.
	ClaimSessionID(ctx context.Context, shopperID, id uuid.UUID) (bool, error)
	SessionID(ctx context.Context, shopperID uuid.UUID) (uuid.UUID, bool, error)
	ClearSessionID(ctx context.Context, shopperID uuid.UUID) error
}

type EventPublisher interface {
	CheckoutStarted(ctx context.Context, evt CheckoutStartedEvent) error
	PurchaseCompleted(ctx context.Context, evt PurchaseCompletedEvent) error
}

type CouponCache interface {
	Get(code string) (*CouponSnapshot, bool)
	Set(code string, snap *CouponSnapshot)
	Delete(code string)
}
