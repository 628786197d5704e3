package api

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errCouponNotUsable = errors.New("coupon not usable")

type CouponHandler struct {
	couponResolver commands.CouponResolver
}

func NewCouponHandler(couponResolver commands.CouponResolver) *CouponHandler {
	return &CouponHandler{couponResolver: couponResolver}
}

// PreviewCoupon godoc
// @Summary      Look up a coupon without applying it
// @Tags         coupons
// @Produce      json
// @Param        code path string true "Coupon code"
// @Success      200 {object} response.CouponResponse
// @Failure      404 {object} httperr.Response
// @Failure      503 {object} httperr.Response
// @Router       /api/coupons/{code} [get]
func (h *CouponHandler) PreviewCoupon(c *gin.Context) {
	discount, err := h.couponResolver.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleUseCaseError(c, err)
		return
	}
	if discount == nil {
		httperr.AbortWithError(c, http.StatusNotFound, errCouponNotUsable, "Invalid or expired coupon", nil)
		return
	}

	c.JSON(http.StatusOK, response.FromDiscount(discount))
}
