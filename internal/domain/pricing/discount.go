package pricing

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountValue   = errors.New("discount value cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMinQuantity     = errors.New("minimum quantity cannot be negative")
	ErrEmptyProductScope      = errors.New("specific scope requires at least one product")
)

type Kind string

const (
	KindPercentage  Kind = "percentage"
	KindFixedAmount Kind = "fixed_amount"
)

type ScopeType string

const (
	ScopeAll      ScopeType = "all"
	ScopeSpecific ScopeType = "specific"
)

// Scope decides which products a discount covers.
type Scope struct {
	Type       ScopeType   `json:"type"`
	ProductIDs []uuid.UUID `json:"product_ids,omitempty"`
}

func AllProducts() Scope {
	return Scope{Type: ScopeAll}
}

func SpecificProducts(ids ...uuid.UUID) Scope {
	return Scope{Type: ScopeSpecific, ProductIDs: ids}
}

// Includes reports whether productID is covered. Unknown scope types cover nothing.
func (s Scope) Includes(productID uuid.UUID) bool {
	switch s.Type {
	case ScopeAll:
		return true
	case ScopeSpecific:
		return slices.Contains(s.ProductIDs, productID)
	default:
		return false
	}
}

// Discount is the tagged union over percentage and fixed-amount reductions.
// Fields are exported because discounts travel inside persisted cart lines.
type Discount struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code,omitempty"`
	Scope       Scope           `json:"scope"`
	Kind        Kind            `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	MinQuantity int             `json:"min_quantity,omitempty"`
}

func NewPercentageDiscount(id uuid.UUID, scope Scope, percentOff decimal.Decimal, minQuantity int) (Discount, error) {
	if percentOff.IsNegative() || percentOff.GreaterThan(decimal.NewFromInt(100)) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return newDiscount(id, scope, KindPercentage, percentOff, minQuantity)
}

func NewFixedAmountDiscount(id uuid.UUID, scope Scope, amountOff decimal.Decimal, minQuantity int) (Discount, error) {
	if amountOff.IsNegative() {
		return Discount{}, ErrInvalidDiscountValue
	}
	return newDiscount(id, scope, KindFixedAmount, amountOff, minQuantity)
}

// ReconstructDiscount rebuilds a discount from stored data. An unrecognised
// kind is kept as-is so EffectivePrice can apply its fail-open policy.
func ReconstructDiscount(id uuid.UUID, code string, scope Scope, kind Kind, value decimal.Decimal, minQuantity int) (Discount, error) {
	var (
		d   Discount
		err error
	)
	switch kind {
	case KindPercentage:
		d, err = NewPercentageDiscount(id, scope, value, minQuantity)
	case KindFixedAmount:
		d, err = NewFixedAmountDiscount(id, scope, value, minQuantity)
	default:
		d, err = newDiscount(id, scope, kind, value, minQuantity)
	}
	if err != nil {
		return Discount{}, err
	}
	d.Code = code
	return d, nil
}

func newDiscount(id uuid.UUID, scope Scope, kind Kind, value decimal.Decimal, minQuantity int) (Discount, error) {
	if minQuantity < 0 {
		return Discount{}, ErrInvalidMinQuantity
	}
	if scope.Type == ScopeSpecific && len(scope.ProductIDs) == 0 {
		return Discount{}, ErrEmptyProductScope
	}
	return Discount{
		ID:          id,
		Scope:       scope,
		Kind:        kind,
		Value:       value,
		MinQuantity: minQuantity,
	}, nil
}

func (d Discount) IsKnownKind() bool {
	return d.Kind == KindPercentage || d.Kind == KindFixedAmount
}

func (d Discount) AppliesTo(productID uuid.UUID) bool {
	return d.Scope.Includes(productID)
}

func (d Discount) ThresholdMet(quantity int) bool {
	return d.MinQuantity <= 0 || quantity >= d.MinQuantity
}

// Window is an optional validity interval shared by discounts and coupons.
type Window struct {
	From *time.Time
	To   *time.Time
}

func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

func (w Window) NotYetOpen(t time.Time) bool {
	return w.From != nil && t.Before(*w.From)
}
