package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
}

type ProductRepository struct {
	queries ProductQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}

	snap, err := toProductSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert product row", err, infra.KindCorruptRecord)
	}
	return snap, nil
}

func toProductSnapshotFromRow(row sqlc.Products) (*shared.ProductSnapshot, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}

	snap := &shared.ProductSnapshot{
		ID:                   row.ID,
		Name:                 row.Name,
		Category:             row.Category,
		Price:                price,
		RequiresPrescription: row.RequiresPrescription,
	}

	if row.OriginalPrice.Valid {
		original, err := pgconv.DecimalFromNumeric(row.OriginalPrice)
		if err != nil {
			return nil, err
		}
		snap.OriginalPrice = &original
	}

	return snap, nil
}
