package repository

import (
	"context"

	"storefront-checkout/internal/infra"
	sqlc "storefront-checkout/internal/infra/sqlc/generated"
	"storefront-checkout/internal/pkg/pgconv"
	"storefront-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	IncrementCouponRedemption(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertCouponRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponRedemptionParams) error
}

type RedemptionRepository struct {
	queries RedemptionQueries
}

func NewRedemptionRepository(queries RedemptionQueries) *RedemptionRepository {
	return &RedemptionRepository{queries: queries}
}

// Record must run inside a transaction: the counter bump and the audit row
// commit together.
func (r *RedemptionRepository) Record(ctx context.Context, tx sqlc.DBTX, params shared.RedemptionParams) (bool, error) {
	affected, err := r.queries.IncrementCouponRedemption(ctx, tx, params.CouponID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon redemptions", err)
	}
	if affected == 0 {
		return false, nil
	}

	err = r.queries.InsertCouponRedemption(ctx, tx, sqlc.InsertCouponRedemptionParams{
		CouponID:   params.CouponID,
		SessionID:  params.SessionID,
		ShopperID:  params.ShopperID,
		OrderTotal: pgconv.DecimalToNumeric(params.Total),
		RedeemedAt: pgconv.TimeToPgtype(params.At),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert coupon redemption", err)
	}
	return true, nil
}
