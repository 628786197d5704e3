package shared

import (
	"time"

	"storefront-checkout/internal/domain/checkout"
	"storefront-checkout/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProductSnapshot struct {
	ID                   uuid.UUID
	Name                 string
	Category             string
	Price                decimal.Decimal
	OriginalPrice        *decimal.Decimal
	RequiresPrescription bool
}

// CouponSnapshot is also the cached form of a coupon, hence the JSON tags.
type CouponSnapshot struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	Kind            string           `json:"kind"`
	Discount        pricing.Discount `json:"discount"`
	AffiliateRef    string           `json:"affiliate_ref,omitempty"`
	ValidFrom       *time.Time       `json:"valid_from,omitempty"`
	ValidTo         *time.Time       `json:"valid_to,omitempty"`
	Active          bool             `json:"active"`
	MaxRedemptions  *int             `json:"max_redemptions,omitempty"`
	RedemptionCount int              `json:"redemption_count"`
}

type RedemptionParams struct {
	CouponID  uuid.UUID
	SessionID uuid.UUID
	ShopperID uuid.UUID
	Total     decimal.Decimal
	At        time.Time
}

type EventItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type CheckoutStartedEvent struct {
	SessionID  uuid.UUID
	ShopperID  uuid.UUID
	Customer   checkout.Contact
	Items      []EventItem
	Total      decimal.Decimal
	Trigger    string
	OccurredAt time.Time
}

type PurchaseCompletedEvent struct {
	SessionID    uuid.UUID
	ShopperID    uuid.UUID
	CouponCode   string
	AffiliateRef string
	Total        decimal.Decimal
	OccurredAt   time.Time
}
