//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscountRepository_FindActiveForProduct(t *testing.T) {
	productID := uuid.New()
	at := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	params := sqlc.ListActiveDiscountsForProductParams{At: pgconv.TimeToPgtype(at), ProductID: productID}

	t.Run("maps scopes and keeps unknown kinds", func(t *testing.T) {
		rows := []sqlc.ListActiveDiscountsForProductRow{
			{ID: uuid.New(), Kind: "percentage", Scope: "all", Value: pgconv.DecimalToNumeric(decimal.NewFromInt(10)), ProductIds: []uuid.UUID{}},
			{ID: uuid.New(), Kind: "fixed_amount", Scope: "specific", Value: pgconv.DecimalToNumeric(decimal.NewFromInt(5)), MinQuantity: 3, ProductIds: []uuid.UUID{productID}},
			{ID: uuid.New(), Kind: "bogo", Scope: "all", Value: pgconv.DecimalToNumeric(decimal.NewFromInt(1)), ProductIds: []uuid.UUID{}},
		}
		mockQueries := new(MockQueries)
		mockQueries.On("ListActiveDiscountsForProduct", mock.Anything, mock.Anything, params).Return(rows, nil)

		discounts, err := NewDiscountRepository(mockQueries, mockQueries).FindActiveForProduct(context.Background(), productID, at)
		require.NoError(t, err)
		require.Len(t, discounts, 3)

		assert.Equal(t, pricing.ScopeAll, discounts[0].Scope.Type)
		assert.Empty(t, discounts[0].Scope.ProductIDs)
		assert.Equal(t, []uuid.UUID{productID}, discounts[1].Scope.ProductIDs)
		assert.Equal(t, 3, discounts[1].MinQuantity)
		assert.False(t, discounts[2].IsKnownKind())
		mockQueries.AssertExpectations(t)
	})

	t.Run("out of range percentage is a corrupt record", func(t *testing.T) {
		rows := []sqlc.ListActiveDiscountsForProductRow{
			{ID: uuid.New(), Kind: "percentage", Scope: "all", Value: pgconv.DecimalToNumeric(decimal.NewFromInt(150))},
		}
		mockQueries := new(MockQueries)
		mockQueries.On("ListActiveDiscountsForProduct", mock.Anything, mock.Anything, params).Return(rows, nil)

		_, err := NewDiscountRepository(mockQueries, mockQueries).FindActiveForProduct(context.Background(), productID, at)
		assert.True(t, infra.IsKind(err, infra.KindCorruptRecord))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("ListActiveDiscountsForProduct", mock.Anything, mock.Anything, params).
			Return([]sqlc.ListActiveDiscountsForProductRow(nil), assert.AnError)

		_, err := NewDiscountRepository(mockQueries, mockQueries).FindActiveForProduct(context.Background(), productID, at)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
