package coupon

import (
	"errors"
	"time"

	"storefront-checkout/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrCouponExhausted   = errors.New("coupon redemption limit reached")
	ErrInvalidKind       = errors.New("invalid coupon kind")
)

// Coupon is a code that resolves to a cart-level discount. Affiliate codes
// additionally carry the partner reference reported with purchases.
type Coupon struct {
	id              uuid.UUID
	code            Code
	kind            Kind
	discount        pricing.Discount
	affiliateRef    string
	window          pricing.Window
	active          bool
	maxRedemptions  *int
	redemptionCount int
}

type Params struct {
	ID              uuid.UUID
	Code            string
	Kind            Kind
	Discount        pricing.Discount
	AffiliateRef    string
	ValidFrom       *time.Time
	ValidTo         *time.Time
	Active          bool
	MaxRedemptions  *int
	RedemptionCount int
}

func NewCoupon(p Params) (*Coupon, error) {
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}

	d := p.Discount
	d.Code = code.String()

	return &Coupon{
		id:              p.ID,
		code:            code,
		kind:            p.Kind,
		discount:        d,
		affiliateRef:    p.AffiliateRef,
		window:          pricing.Window{From: p.ValidFrom, To: p.ValidTo},
		active:          p.Active,
		maxRedemptions:  p.MaxRedemptions,
		redemptionCount: p.RedemptionCount,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	return c.ValidateUsage(t) == nil
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.active {
		return ErrCouponInactive
	}
	if !c.window.Contains(t) {
		if c.window.NotYetOpen(t) {
			return ErrCouponNotYetValid
		}
		return ErrCouponExpired
	}
	if c.maxRedemptions != nil && c.redemptionCount >= *c.maxRedemptions {
		return ErrCouponExhausted
	}
	return nil
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) Kind() Kind                 { return c.kind }
func (c *Coupon) Discount() pricing.Discount { return c.discount }
func (c *Coupon) AffiliateRef() string       { return c.affiliateRef }
func (c *Coupon) IsAffiliate() bool          { return c.kind == KindAffiliate }
