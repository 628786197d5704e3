package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/cart.go -package=mock_queries

import (
	"context"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineView represents a priced cart line
type CartLineView struct {
	ProductID            uuid.UUID
	Name                 string
	BasePrice            decimal.Decimal
	UnitPrice            decimal.Decimal
	Quantity             int
	LineTotal            decimal.Decimal
	DiscountID           *uuid.UUID
	DiscountCode         string
	DiscountKind         string
	LockedOriginalPrice  *decimal.Decimal
	RequiresPrescription bool
}

// CartView represents a cart with totals recomputed on read
type CartView struct {
	Lines                []CartLineView
	Count                int
	Subtotal             decimal.Decimal
	Total                decimal.Decimal
	Savings              decimal.Decimal
	CouponCode           string
	RequiresPrescription bool
}

type CartQueries interface {
	Get(ctx context.Context, shopperID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store shared.CartStore
}

func NewCartQueries(store shared.CartStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) Get(ctx context.Context, shopperID uuid.UUID) (*CartView, error) {
	c, err := q.store.Load(ctx, shopperID)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "loading cart"), errs.ErrCartPersistence)
	}
	return NewCartView(c), nil
}

func NewCartView(c *cart.Cart) *CartView {
	view := &CartView{
		Lines:      make([]CartLineView, 0, len(c.Lines())),
		Count:      c.Count(),
		Subtotal:   c.Subtotal(),
		Total:      c.Total(),
		CouponCode: c.CouponCode(),
	}
	view.Savings = view.Subtotal.Sub(view.Total)

	for _, l := range c.Lines() {
		lv := CartLineView{
			ProductID:            l.ProductID,
			Name:                 l.Name,
			BasePrice:            l.BasePrice,
			UnitPrice:            l.EffectivePrice(),
			Quantity:             l.Quantity,
			LineTotal:            l.Total(),
			LockedOriginalPrice:  l.LockedOriginalPrice,
			RequiresPrescription: l.RequiresPrescription,
		}
		if l.Discount != nil {
			id := l.Discount.ID
			lv.DiscountID = &id
			lv.DiscountCode = l.Discount.Code
			lv.DiscountKind = string(l.Discount.Kind)
		}
		if l.RequiresPrescription {
			view.RequiresPrescription = true
		}
		view.Lines = append(view.Lines, lv)
	}
	return view
}
