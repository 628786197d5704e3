package request

import (
	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetQuantityRequest accepts zero or negative quantities, which remove the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}
