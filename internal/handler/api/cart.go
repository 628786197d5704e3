package api

import (
	"net/http"

	"storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// GetCart godoc
// @Summary      Get the shopper's cart
// @Description  Returns every line priced with its discount, plus totals
// @Tags         cart
// @Produce      json
// @Success      200 {object} response.CartResponse
// @Failure      503 {object} httperr.Response
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), shopperID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(view))
}

// AddItem godoc
// @Summary      Add one unit of a product
// @Description  Inserts the product with its best automatic discount, or increments an existing line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body request.AddItemRequest true "Product to add"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.cartCommands.AddItem(c.Request.Context(), shopperID, req.ProductID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(queries.NewCartView(updated)))
}

// SetQuantity godoc
// @Summary      Set a line's quantity
// @Description  A quantity below one removes the line
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product ID"
// @Param        request body request.SetQuantityRequest true "New quantity"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} httperr.Response
// @Failure      404 {object} httperr.Response
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.cartCommands.SetQuantity(c.Request.Context(), shopperID, productID, *req.Quantity)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(queries.NewCartView(updated)))
}

// RemoveItem godoc
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Param        productId path string true "Product ID"
// @Success      200 {object} response.CartResponse
// @Failure      400 {object} httperr.Response
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	updated, err := h.cartCommands.RemoveItem(c.Request.Context(), shopperID, productID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCartView(queries.NewCartView(updated)))
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         cart
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), shopperID); err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ApplyCoupon godoc
// @Summary      Apply a coupon to the cart
// @Description  Replaces the discount of every in-scope line; applying the same code again changes nothing
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request body request.ApplyCouponRequest true "Coupon code"
// @Success      200 {object} response.ApplyCouponResponse
// @Failure      422 {object} httperr.Response
// @Failure      503 {object} httperr.Response
// @Router       /api/cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	var req request.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cartCommands.ApplyCoupon(c.Request.Context(), shopperID, req.Code)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ApplyCouponResponse{
		Cart:          response.FromCartView(queries.NewCartView(result.Cart)),
		Code:          result.Discount.Code,
		LinesAffected: result.LinesAffected,
	})
}
