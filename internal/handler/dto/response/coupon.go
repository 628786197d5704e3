package response

import (
	"storefront-checkout/internal/domain/pricing"
)

type CouponResponse struct {
	Code        string   `json:"code"`
	Kind        string   `json:"kind"`
	Value       string   `json:"value"`
	Scope       string   `json:"scope"`
	ProductIDs  []string `json:"product_ids,omitempty"`
	MinQuantity int      `json:"min_quantity,omitempty"`
}

func FromDiscount(d *pricing.Discount) *CouponResponse {
	res := &CouponResponse{
		Code:        d.Code,
		Kind:        string(d.Kind),
		Value:       d.Value.String(),
		Scope:       string(d.Scope.Type),
		MinQuantity: d.MinQuantity,
	}
	for _, id := range d.Scope.ProductIDs {
		res.ProductIDs = append(res.ProductIDs, id.String())
	}
	return res
}
