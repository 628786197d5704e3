//go:build unit

package queries_test

import (
	"context"
	"testing"

	"storefront-checkout/internal/domain/cart"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/queries"
	mock_shared "storefront-checkout/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCartQueries_Get(t *testing.T) {
	ctx := context.Background()
	shopperID := uuid.New()

	t.Run("recomputes totals and savings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_shared.NewMockCartStore(ctrl)

		original := decimal.RequireFromString("30.00")
		discounted := cart.Product{
			ID:                   uuid.New(),
			Name:                 "Metformin 500mg",
			Price:                decimal.RequireFromString("25.00"),
			OriginalPrice:        &original,
			RequiresPrescription: true,
		}
		d, err := pricing.ReconstructDiscount(uuid.New(), "RX5", pricing.AllProducts(), pricing.KindFixedAmount, decimal.NewFromInt(5), 0)
		require.NoError(t, err)
		discounted.Discount = &d
		plain := cart.Product{ID: uuid.New(), Name: "Cotton pads", Price: decimal.RequireFromString("2.50")}

		c := cart.New()
		require.NoError(t, c.Add(discounted))
		require.NoError(t, c.Add(discounted))
		require.NoError(t, c.Add(plain))
		store.EXPECT().Load(gomock.Any(), shopperID).Return(c, nil)

		view, err := queries.NewCartQueries(store).Get(ctx, shopperID)
		require.NoError(t, err)

		assert.Equal(t, 3, view.Count)
		assert.Equal(t, "52.50", view.Subtotal.StringFixed(2))
		assert.Equal(t, "42.50", view.Total.StringFixed(2))
		assert.Equal(t, "10.00", view.Savings.StringFixed(2))
		assert.Equal(t, "RX5", view.CouponCode)
		assert.True(t, view.RequiresPrescription)

		require.Len(t, view.Lines, 2)
		first := view.Lines[0]
		assert.Equal(t, "20.00", first.UnitPrice.StringFixed(2))
		assert.Equal(t, "40.00", first.LineTotal.StringFixed(2))
		require.NotNil(t, first.DiscountID)
		assert.Equal(t, d.ID, *first.DiscountID)
		assert.Equal(t, "fixed_amount", first.DiscountKind)
		assert.Nil(t, view.Lines[1].DiscountID)
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_shared.NewMockCartStore(ctrl)
		store.EXPECT().Load(gomock.Any(), shopperID).Return(cart.New(), nil)

		view, err := queries.NewCartQueries(store).Get(ctx, shopperID)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Total.IsZero())
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mock_shared.NewMockCartStore(ctrl)
		store.EXPECT().Load(gomock.Any(), shopperID).Return(nil, assert.AnError)

		_, err := queries.NewCartQueries(store).Get(ctx, shopperID)
		assert.True(t, errs.Is(err, errs.ErrCartPersistence))
	})
}
