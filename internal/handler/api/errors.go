package api

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/handler/middleware"
	"storefront-checkout/internal/pkg/errs"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingShopper = errors.New("shopper identity missing from context")

func handleUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, errs.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item is not in the cart", nil)
	case errs.Is(err, errs.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid or expired coupon", nil)
	case errs.Is(err, errs.ErrLookupFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Coupon service unavailable, please retry", nil)
	case errs.Is(err, errs.ErrNoActiveSession):
		httperr.AbortWithError(c, http.StatusConflict, err, "No checkout in progress", nil)
	case errs.Is(err, commands.ErrInvalidFlushReason):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown flush reason", nil)
	case errs.Is(err, errs.ErrCartPersistence):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Cart is temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// requireShopper aborts with 500 when Identify did not run for the route.
func requireShopper(c *gin.Context) (uuid.UUID, bool) {
	shopperID, ok := middleware.GetShopperID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingShopper, "Shopper identity unavailable", nil)
		return uuid.Nil, false
	}
	return shopperID, true
}

func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format", nil)
		return uuid.Nil, false
	}
	return productID, true
}
