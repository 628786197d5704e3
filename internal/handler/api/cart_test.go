//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/tests/common/builder"
	"storefront-checkout/tests/common/httptest"
	"storefront-checkout/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type cartHandlerSuite struct {
	handlerSuite
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(cartHandlerSuite))
}

func (s *cartHandlerSuite) TestGetCart() {
	vitamins := builder.NewProductBuilder().WithPrice("10.00").WithQuantity(3).WithPercentOff(20)
	syrup := builder.NewProductBuilder().WithName("Cough Syrup").WithPrice("7.25").AsPrescription()
	view := builder.NewCartBuilder().WithProduct(vitamins).WithProduct(syrup).BuildView()

	s.cartQueries.EXPECT().Get(gomock.Any(), s.shopperID).Return(view, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.token)

	var res response.CartResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Equal(4, res.Count)
	s.Equal("37.25", res.Subtotal)
	s.Equal("31.25", res.Total)
	s.Equal("6.00", res.Savings)
	s.True(res.RequiresPrescription)
	s.Require().Len(res.Items, 2)
	s.Equal("8.00", res.Items[0].UnitPrice)
	s.Equal("24.00", res.Items[0].LineTotal)
	s.Require().NotNil(res.Items[0].Discount)
	s.Equal("percentage", res.Items[0].Discount.Kind)
	s.Nil(res.Items[1].Discount)
}

func (s *cartHandlerSuite) TestGetCart_MintsShopperIdentity() {
	s.cartQueries.EXPECT().Get(gomock.Any(), gomock.Not(s.shopperID)).
		Return(builder.NewCartBuilder().BuildView(), nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, "")

	s.Equal(http.StatusOK, w.Code)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	s.NotEmpty(w.Header().Get("X-Shopper-Token"))
	cookie := httptest.ExtractCookie(w, "shopper_token")
	s.Require().NotNil(cookie)
	s.True(cookie.HttpOnly)
}

func (s *cartHandlerSuite) TestGetCart_StoreUnavailable() {
	s.cartQueries.EXPECT().Get(gomock.Any(), s.shopperID).
		Return(nil, errs.Mark(errs.New("redis down"), errs.ErrCartPersistence))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart", nil, s.token)

	httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "temporarily unavailable")
}

func (s *cartHandlerSuite) TestAddItem() {
	product := builder.NewProductBuilder().WithPrice("19.99")
	updated := builder.NewCartBuilder().WithProduct(product).BuildDomain()
	base := testutil.DtoMap(s.T(), product.BuildAddItemRequestDTO())

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func()
		wantStatus int
		wantErr    string
	}{
		{
			name: "adds the product",
			body: base,
			setupMock: func() {
				s.cartCommands.EXPECT().AddItem(gomock.Any(), s.shopperID, product.ID).Return(updated, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing product id",
			body:       testutil.DtoMap(s.T(), product.BuildAddItemRequestDTO(), testutil.Field("product_id", nil)),
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Invalid request format",
		},
		{
			name:       "malformed product id",
			body:       testutil.DtoMap(s.T(), product.BuildAddItemRequestDTO(), testutil.Field("product_id", "not-a-uuid")),
			setupMock:  func() {},
			wantStatus: http.StatusBadRequest,
			wantErr:    "Invalid request format",
		},
		{
			name: "unknown product",
			body: base,
			setupMock: func() {
				s.cartCommands.EXPECT().AddItem(gomock.Any(), s.shopperID, product.ID).
					Return(nil, errs.Mark(errs.New("no row"), errs.ErrProductNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "Product not found",
		},
		{
			name: "unexpected failure",
			body: base,
			setupMock: func() {
				s.cartCommands.EXPECT().AddItem(gomock.Any(), s.shopperID, product.ID).
					Return(nil, errs.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "Internal server error",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setupMock()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/items", tt.body, s.token)

			if tt.wantErr != "" {
				httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantErr)
				return
			}
			var res response.CartResponse
			httptest.AssertSuccessResponse(s.T(), w, tt.wantStatus, &res)
			s.Equal("19.99", res.Total)
			s.Equal(1, res.Count)
		})
	}
}

func (s *cartHandlerSuite) TestSetQuantity() {
	product := builder.NewProductBuilder().WithPrice("4.50").WithQuantity(4)
	updated := builder.NewCartBuilder().WithProduct(product).BuildDomain()
	path := "/api/cart/items/" + product.ID.String()

	s.Run("sets the quantity", func() {
		s.cartCommands.EXPECT().SetQuantity(gomock.Any(), s.shopperID, product.ID, 4).Return(updated, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{"quantity": 4}, s.token)

		var res response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("18.00", res.Total)
	})

	s.Run("zero is forwarded so the line is removed", func() {
		empty := builder.NewCartBuilder().BuildDomain()
		s.cartCommands.EXPECT().SetQuantity(gomock.Any(), s.shopperID, product.ID, 0).Return(empty, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{"quantity": 0}, s.token)

		var res response.CartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Empty(res.Items)
	})

	s.Run("missing quantity", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, map[string]any{}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("invalid product id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/cart/items/abc", map[string]any{"quantity": 1}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid product ID format")
	})

	s.Run("line not in cart", func() {
		s.cartCommands.EXPECT().SetQuantity(gomock.Any(), s.shopperID, product.ID, 2).
			Return(nil, errs.Mark(errs.New("absent"), errs.ErrCartItemNotFound))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, request.SetQuantityRequest{Quantity: intPtr(2)}, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not in the cart")
	})
}

func (s *cartHandlerSuite) TestRemoveAndClear() {
	productID := uuid.New()

	s.cartCommands.EXPECT().RemoveItem(gomock.Any(), s.shopperID, productID).
		Return(builder.NewCartBuilder().BuildDomain(), nil)
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart/items/"+productID.String(), nil, s.token)
	s.Equal(http.StatusOK, w.Code)

	s.cartCommands.EXPECT().Clear(gomock.Any(), s.shopperID).Return(nil)
	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, s.token)
	s.Equal(http.StatusNoContent, w.Code)
	s.Empty(w.Body.String())
}

func (s *cartHandlerSuite) TestApplyCoupon() {
	product := builder.NewProductBuilder().WithPrice("50.00")
	applied := builder.NewCartBuilder().WithProduct(product).WithCoupon("SPRING10", 10).BuildDomain()
	lines := applied.Lines()
	require.NotNil(s.T(), lines[0].Discount)

	s.Run("applies the coupon", func() {
		s.cartCommands.EXPECT().ApplyCoupon(gomock.Any(), s.shopperID, "spring10").
			Return(&commands.ApplyCouponResult{Cart: applied, Discount: *lines[0].Discount, LinesAffected: 1}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/coupon", request.ApplyCouponRequest{Code: "spring10"}, s.token)

		var res response.ApplyCouponResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("SPRING10", res.Code)
		s.Equal(1, res.LinesAffected)
		s.Equal("45.00", res.Cart.Total)
		s.Equal("SPRING10", res.Cart.CouponCode)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErr    string
	}{
		{"invalid coupon", errs.Mark(errs.New("unknown"), errs.ErrInvalidCoupon), http.StatusUnprocessableEntity, "Invalid or expired coupon"},
		{"lookup failure", errs.Mark(errs.New("db down"), errs.ErrLookupFailed), http.StatusServiceUnavailable, "please retry"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.cartCommands.EXPECT().ApplyCoupon(gomock.Any(), s.shopperID, "NOPE").Return(nil, tt.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/coupon", request.ApplyCouponRequest{Code: "NOPE"}, s.token)

			httptest.AssertErrorResponse(s.T(), w, tt.wantStatus, tt.wantErr)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestFromCartView_KeepsFullPrecisionUntilRendering(t *testing.T) {
	product := builder.NewProductBuilder().WithPrice("0.335").WithQuantity(3)
	view := builder.NewCartBuilder().WithProduct(product).BuildView()

	res := response.FromCartView(view)

	assert.Equal(t, "1.01", res.Total)
	assert.Equal(t, "0.34", res.Items[0].UnitPrice)
}
