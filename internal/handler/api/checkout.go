package api

import (
	"net/http"

	"storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/handler/dto/response"
	"storefront-checkout/internal/handler/httperr"
	"storefront-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	tracker commands.CheckoutTracker
}

func NewCheckoutHandler(tracker commands.CheckoutTracker) *CheckoutHandler {
	return &CheckoutHandler{tracker: tracker}
}

// UpdateForm godoc
// @Summary      Report the current checkout form contents
// @Description  Validates the form against the cart and arms the quiescence timer when both are complete
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body request.UpdateFormRequest true "Checkout form"
// @Success      200 {object} response.CheckoutStatusResponse
// @Failure      400 {object} httperr.Response
// @Router       /api/checkout/form [put]
func (h *CheckoutHandler) UpdateForm(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	var req request.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	contact, err := req.ToContact()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	status, err := h.tracker.UpdateForm(c.Request.Context(), shopperID, contact)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutStatus(status))
}

// Flush godoc
// @Summary      Start the checkout now if it is ready
// @Description  Sent when the page is hidden or about to unload
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request body request.FlushRequest true "Flush reason"
// @Success      200 {object} response.CheckoutStatusResponse
// @Failure      400 {object} httperr.Response
// @Router       /api/checkout/flush [post]
func (h *CheckoutHandler) Flush(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	var req request.FlushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	status, err := h.tracker.Flush(c.Request.Context(), shopperID, commands.FlushReason(req.Reason))
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutStatus(status))
}

// Dismiss godoc
// @Summary      Close the checkout form
// @Tags         checkout
// @Produce      json
// @Success      200 {object} response.CheckoutStatusResponse
// @Router       /api/checkout/dismiss [post]
func (h *CheckoutHandler) Dismiss(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	status, err := h.tracker.Dismiss(c.Request.Context(), shopperID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutStatus(status))
}

// Complete godoc
// @Summary      Record a successful purchase
// @Description  Emits purchase completed for the session started by this shopper and empties the cart
// @Tags         checkout
// @Produce      json
// @Success      200 {object} response.CompletionResponse
// @Failure      409 {object} httperr.Response
// @Router       /api/checkout/complete [post]
func (h *CheckoutHandler) Complete(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	result, err := h.tracker.Complete(c.Request.Context(), shopperID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCompletion(result))
}

// Status godoc
// @Summary      Get the checkout session state
// @Tags         checkout
// @Produce      json
// @Success      200 {object} response.CheckoutStatusResponse
// @Router       /api/checkout [get]
func (h *CheckoutHandler) Status(c *gin.Context) {
	shopperID, ok := requireShopper(c)
	if !ok {
		return
	}

	status, err := h.tracker.Status(c.Request.Context(), shopperID)
	if err != nil {
		handleUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutStatus(status))
}
