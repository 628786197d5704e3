package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"
)

type CouponQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetCouponByCodeRow, error)
}

type CouponRepository struct {
	queries CouponQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

// FindByCode expects an already normalized code.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	snap, err := toCouponSnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err, infra.KindCorruptRecord)
	}
	return snap, nil
}

func toCouponSnapshotFromRow(row sqlc.GetCouponByCodeRow) (*shared.CouponSnapshot, error) {
	d, err := toDiscount(row.ID, row.Code, row.Scope, row.ProductIds, row.DiscountKind, row.Value, row.MinQuantity)
	if err != nil {
		return nil, err
	}

	snap := &shared.CouponSnapshot{
		ID:              row.ID,
		Code:            row.Code,
		Kind:            row.Kind,
		Discount:        d,
		ValidFrom:       pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:         pgconv.TimePtrFromPgtype(row.ValidTo),
		Active:          row.IsActive,
		RedemptionCount: int(row.RedemptionCount),
	}

	if ref := pgconv.StringPtrFromPgtype(row.AffiliateRef); ref != nil {
		snap.AffiliateRef = *ref
	}
	if limit := pgconv.Int32PtrFromPgtype(row.MaxRedemptions); limit != nil {
		maxRedemptions := int(*limit)
		snap.MaxRedemptions = &maxRedemptions
	}

	return snap, nil
}
