package webhook

import (
	"time"

	"storefront-checkout/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type customerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type itemPayload struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type checkoutStartedPayload struct {
	Event      string          `json:"event"`
	SessionID  string          `json:"session_id"`
	ShopperID  string          `json:"shopper_id"`
	Trigger    string          `json:"trigger"`
	Customer   customerPayload `json:"customer"`
	Items      []itemPayload   `json:"items"`
	Total      string          `json:"total"`
	OccurredAt string          `json:"occurred_at"`
}

type purchaseCompletedPayload struct {
	Event        string `json:"event"`
	SessionID    string `json:"session_id"`
	ShopperID    string `json:"shopper_id"`
	CouponCode   string `json:"coupon_code,omitempty"`
	AffiliateRef string `json:"affiliate_ref,omitempty"`
	Total        string `json:"total"`
	OccurredAt   string `json:"occurred_at"`
}

func toCheckoutStartedPayload(evt shared.CheckoutStartedEvent) checkoutStartedPayload {
	items := make([]itemPayload, 0, len(evt.Items))
	for _, item := range evt.Items {
		items = append(items, itemPayload{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: money(item.UnitPrice),
			LineTotal: money(item.LineTotal),
		})
	}

	return checkoutStartedPayload{
		Event:     EventCheckoutStarted,
		SessionID: evt.SessionID.String(),
		ShopperID: evt.ShopperID.String(),
		Trigger:   evt.Trigger,
		Customer: customerPayload{
			Name:  evt.Customer.Name,
			Email: evt.Customer.Email,
			Phone: evt.Customer.Phone,
		},
		Items:      items,
		Total:      money(evt.Total),
		OccurredAt: evt.OccurredAt.UTC().Format(time.RFC3339),
	}
}

func toPurchaseCompletedPayload(evt shared.PurchaseCompletedEvent) purchaseCompletedPayload {
	return purchaseCompletedPayload{
		Event:        EventPurchaseCompleted,
		SessionID:    evt.SessionID.String(),
		ShopperID:    evt.ShopperID.String(),
		CouponCode:   evt.CouponCode,
		AffiliateRef: evt.AffiliateRef,
		Total:        money(evt.Total),
		OccurredAt:   evt.OccurredAt.UTC().Format(time.RFC3339),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
