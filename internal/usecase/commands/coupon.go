package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/coupon.go -package=mock_commands

import (
	"context"
	"log/slog"

	domcoupon "storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/infra"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

type CouponResolver interface {
	// Resolve returns (nil, nil) for codes that are malformed, unknown or not
	// currently usable. Backend failures are marked errs.ErrLookupFailed.
	Resolve(ctx context.Context, code string) (*pricing.Discount, error)
	// Lookup returns the stored coupon regardless of validity, or nil.
	Lookup(ctx context.Context, code string) (*domcoupon.Coupon, error)
	// RecordRedemption counts one use of the coupon within a transaction.
	RecordRedemption(ctx context.Context, c *domcoupon.Coupon, params shared.RedemptionParams) error
}

type couponResolverImpl struct {
	uow    shared.UnitOfWork
	cache  shared.CouponCache
	clock  clock.Clock
	logger *slog.Logger
	group  singleflight.Group
}

func NewCouponResolver(uow shared.UnitOfWork, cache shared.CouponCache, clk clock.Clock, logger *slog.Logger) CouponResolver {
	return &couponResolverImpl{
		uow:    uow,
		cache:  cache,
		clock:  clk,
		logger: logger,
	}
}

func (r *couponResolverImpl) Resolve(ctx context.Context, code string) (*pricing.Discount, error) {
	c, err := r.Lookup(ctx, code)
	if err != nil || c == nil {
		return nil, err
	}

	if err := c.ValidateUsage(r.clock.Now()); err != nil {
		r.logger.Debug("coupon not usable", "code", c.Code().String(), "reason", err.Error())
		return nil, nil
	}

	d := c.Discount()
	return &d, nil
}

func (r *couponResolverImpl) Lookup(ctx context.Context, code string) (*domcoupon.Coupon, error) {
	normalized, err := domcoupon.NewCode(code)
	if err != nil {
		return nil, nil
	}
	key := normalized.String()

	if snap, ok := r.cache.Get(key); ok {
		return r.toCoupon(snap), nil
	}

	// Concurrent lookups of one code share a single round trip.
	v, err, _ := r.group.Do(key, func() (any, error) {
		snap, ferr := r.uow.CommandReads().CouponByCode(ctx, key)
		if ferr != nil {
			switch {
			case infra.IsKind(ferr, infra.KindNotFound):
				return (*shared.CouponSnapshot)(nil), nil
			case infra.IsKind(ferr, infra.KindCorruptRecord):
				r.logger.Warn("ignoring malformed coupon record", "code", key, "error", ferr.Error())
				return (*shared.CouponSnapshot)(nil), nil
			}
			return nil, errs.Mark(errs.Wrap(ferr, "looking up coupon"), errs.ErrLookupFailed)
		}
		r.cache.Set(key, snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	snap, _ := v.(*shared.CouponSnapshot)
	if snap == nil {
		return nil, nil
	}
	return r.toCoupon(snap), nil
}

func (r *couponResolverImpl) RecordRedemption(ctx context.Context, c *domcoupon.Coupon, params shared.RedemptionParams) error {
	params.CouponID = c.ID()

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		recorded, rerr := tx.Redemptions().Record(ctx, tx.DB(), params)
		if rerr != nil {
			return rerr
		}
		if !recorded {
			r.logger.Warn("coupon redemption limit reached at completion",
				"code", c.Code().String(),
				"session_id", params.SessionID)
		}
		return nil
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "recording coupon redemption"), errs.ErrDatabaseOperationFailed)
	}

	r.cache.Delete(c.Code().String())
	return nil
}

// toCoupon treats stored rows that break domain rules as unknown codes.
func (r *couponResolverImpl) toCoupon(snap *shared.CouponSnapshot) *domcoupon.Coupon {
	c, err := domcoupon.NewCoupon(domcoupon.Params{
		ID:              snap.ID,
		Code:            snap.Code,
		Kind:            domcoupon.Kind(snap.Kind),
		Discount:        snap.Discount,
		AffiliateRef:    snap.AffiliateRef,
		ValidFrom:       snap.ValidFrom,
		ValidTo:         snap.ValidTo,
		Active:          snap.Active,
		MaxRedemptions:  snap.MaxRedemptions,
		RedemptionCount: snap.RedemptionCount,
	})
	if err != nil {
		r.logger.Warn("ignoring malformed coupon record", "code", snap.Code, "error", err.Error())
		return nil
	}
	return c
}
