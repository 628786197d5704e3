package response

import (
	"storefront-checkout/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type DiscountResponse struct {
	ID   string `json:"id"`
	Code string `json:"code,omitempty"`
	Kind string `json:"kind"`
}

type CartItemResponse struct {
	ProductID            string            `json:"product_id"`
	Name                 string            `json:"name"`
	BasePrice            string            `json:"base_price"`
	UnitPrice            string            `json:"unit_price"`
	Quantity             int               `json:"quantity"`
	LineTotal            string            `json:"line_total"`
	OriginalPrice        *string           `json:"original_price,omitempty"`
	Discount             *DiscountResponse `json:"discount,omitempty"`
	RequiresPrescription bool              `json:"requires_prescription"`
}

type CartResponse struct {
	Items                []CartItemResponse `json:"items"`
	Count                int                `json:"count"`
	Subtotal             string             `json:"subtotal"`
	Total                string             `json:"total"`
	Savings              string             `json:"savings"`
	CouponCode           string             `json:"coupon_code,omitempty"`
	RequiresPrescription bool               `json:"requires_prescription"`
}

type ApplyCouponResponse struct {
	Cart          *CartResponse `json:"cart"`
	Code          string        `json:"code"`
	LinesAffected int           `json:"lines_affected"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	res := &CartResponse{
		Items:                make([]CartItemResponse, len(v.Lines)),
		Count:                v.Count,
		Subtotal:             Money(v.Subtotal),
		Total:                Money(v.Total),
		Savings:              Money(v.Savings),
		CouponCode:           v.CouponCode,
		RequiresPrescription: v.RequiresPrescription,
	}
	for i, l := range v.Lines {
		item := CartItemResponse{
			ProductID:            l.ProductID.String(),
			Name:                 l.Name,
			BasePrice:            Money(l.BasePrice),
			UnitPrice:            Money(l.UnitPrice),
			Quantity:             l.Quantity,
			LineTotal:            Money(l.LineTotal),
			RequiresPrescription: l.RequiresPrescription,
		}
		if l.LockedOriginalPrice != nil {
			original := Money(*l.LockedOriginalPrice)
			item.OriginalPrice = &original
		}
		if l.DiscountID != nil {
			item.Discount = &DiscountResponse{
				ID:   l.DiscountID.String(),
				Code: l.DiscountCode,
				Kind: l.DiscountKind,
			}
		}
		res.Items[i] = item
	}
	return res
}

// Money renders amounts with two decimals; values are never rounded before this point.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
