//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/domain/coupon"
	"storefront-checkout/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
		errIs    error
	}{
		{in: "spring10", expected: "SPRING10"},
		{in: "  Welcome-5 ", expected: "WELCOME-5"},
		{in: "AB", errIs: coupon.ErrInvalidCouponCode},
		{in: "   ", errIs: coupon.ErrInvalidCouponCode},
		{in: "has space", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			code, err := coupon.NewCode(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, code.String())
		})
	}
}

func TestCoupon_ValidateUsage(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	limit := 3

	discount, err := pricing.NewPercentageDiscount(uuid.New(), pricing.AllProducts(), decimal.NewFromInt(10), 0)
	require.NoError(t, err)

	base := func() coupon.Params {
		return coupon.Params{
			ID:       uuid.New(),
			Code:     "spring10",
			Kind:     coupon.KindCoupon,
			Discount: discount,
			Active:   true,
		}
	}

	testCases := []struct {
		name   string
		mutate func(p *coupon.Params)
		errIs  error
	}{
		{name: "open ended coupon is valid", mutate: func(*coupon.Params) {}},
		{name: "inside window", mutate: func(p *coupon.Params) { p.ValidFrom, p.ValidTo = &past, &future }},
		{name: "not yet valid", mutate: func(p *coupon.Params) { p.ValidFrom = &future }, errIs: coupon.ErrCouponNotYetValid},
		{name: "expired", mutate: func(p *coupon.Params) { p.ValidTo = &past }, errIs: coupon.ErrCouponExpired},
		{name: "inactive", mutate: func(p *coupon.Params) { p.Active = false }, errIs: coupon.ErrCouponInactive},
		{name: "below limit", mutate: func(p *coupon.Params) { p.MaxRedemptions, p.RedemptionCount = &limit, 2 }},
		{name: "limit reached", mutate: func(p *coupon.Params) { p.MaxRedemptions, p.RedemptionCount = &limit, 3 }, errIs: coupon.ErrCouponExhausted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.mutate(&p)
			c, err := coupon.NewCoupon(p)
			require.NoError(t, err)

			err = c.ValidateUsage(now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.False(t, c.IsValidAt(now))
				return
			}
			assert.NoError(t, err)
			assert.True(t, c.IsValidAt(now))
		})
	}
}

func TestNewCoupon(t *testing.T) {
	discount, err := pricing.NewFixedAmountDiscount(uuid.New(), pricing.AllProducts(), decimal.NewFromInt(5), 0)
	require.NoError(t, err)

	t.Run("discount carries the normalized code", func(t *testing.T) {
		c, err := coupon.NewCoupon(coupon.Params{
			ID: uuid.New(), Code: " partner7 ", Kind: coupon.KindAffiliate,
			Discount: discount, AffiliateRef: "clinic-7", Active: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "PARTNER7", c.Discount().Code)
		assert.True(t, c.IsAffiliate())
		assert.Equal(t, "clinic-7", c.AffiliateRef())
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon(coupon.Params{ID: uuid.New(), Code: "ABC", Kind: "gift", Discount: discount})
		assert.ErrorIs(t, err, coupon.ErrInvalidKind)
	})
}
