//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-checkout/internal/domain/pricing"
	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type couponHandlerSuite struct {
	handlerSuite
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(couponHandlerSuite))
}

func (s *couponHandlerSuite) TestPreviewCoupon() {
	productID := uuid.New()
	discount, err := pricing.ReconstructDiscount(uuid.New(), "BULK3", pricing.SpecificProducts(productID),
		pricing.KindFixedAmount, decimal.RequireFromString("2.5"), 3)
	s.Require().NoError(err)

	s.Run("usable coupon", func() {
		s.coupons.EXPECT().Resolve(gomock.Any(), "bulk3").Return(&discount, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/bulk3", nil, "")

		var res response.CouponResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("BULK3", res.Code)
		s.Equal("fixed_amount", res.Kind)
		s.Equal("2.5", res.Value)
		s.Equal("specific", res.Scope)
		s.Equal([]string{productID.String()}, res.ProductIDs)
		s.Equal(3, res.MinQuantity)
		s.Empty(w.Header().Get("X-Shopper-Token"), "previewing a coupon does not need a shopper")
	})

	s.Run("unknown or expired coupon", func() {
		s.coupons.EXPECT().Resolve(gomock.Any(), "GONE").Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/GONE", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Invalid or expired coupon")
	})

	s.Run("backend failure asks the client to retry", func() {
		s.coupons.EXPECT().Resolve(gomock.Any(), "SPRING10").
			Return(nil, errs.Mark(errs.New("timeout"), errs.ErrLookupFailed))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/coupons/SPRING10", nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "please retry")
	})
}
