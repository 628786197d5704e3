package repository

import (
	"context"
	"time"

	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DiscountQueries interface {
	ListActiveDiscountsForProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveDiscountsForProductParams) ([]sqlc.ListActiveDiscountsForProductRow, error)
}

type DiscountRepository struct {
	queries DiscountQueries
	db      sqlc.DBTX
}

func NewDiscountRepository(queries DiscountQueries, db sqlc.DBTX) *DiscountRepository {
	return &DiscountRepository{
		queries: queries,
		db:      db,
	}
}

// FindActiveForProduct returns the automatic discounts covering productID at
// the given instant. Unknown kinds are returned as stored.
func (r *DiscountRepository) FindActiveForProduct(ctx context.Context, productID uuid.UUID, at time.Time) ([]pricing.Discount, error) {
	rows, err := r.queries.ListActiveDiscountsForProduct(ctx, r.db, sqlc.ListActiveDiscountsForProductParams{
		At:        pgconv.TimeToPgtype(at),
		ProductID: productID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active discounts", err)
	}

	discounts := make([]pricing.Discount, 0, len(rows))
	for _, row := range rows {
		d, err := toDiscount(row.ID, "", row.Scope, row.ProductIds, row.Kind, row.Value, row.MinQuantity)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert discount row", err, infra.KindCorruptRecord)
		}
		discounts = append(discounts, d)
	}
	return discounts, nil
}

func toDiscount(id uuid.UUID, code, scope string, productIDs []uuid.UUID, kind string, value pgtype.Numeric, minQuantity int32) (pricing.Discount, error) {
	v, err := pgconv.DecimalFromNumeric(value)
	if err != nil {
		return pricing.Discount{}, err
	}

	s := pricing.Scope{Type: pricing.ScopeType(scope)}
	if s.Type == pricing.ScopeSpecific {
		s.ProductIDs = productIDs
	}

	return pricing.ReconstructDiscount(id, code, s, pricing.Kind(kind), v, int(minQuantity))
}
