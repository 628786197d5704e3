package response

import (
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutStatusResponse struct {
	State     string   `json:"state"`
	SessionID *string  `json:"session_id,omitempty"`
	Problems  []string `json:"problems"`
	Emitted   bool     `json:"emitted"`
}

type CompletionResponse struct {
	SessionID    string `json:"session_id"`
	Total        string `json:"total"`
	CouponCode   string `json:"coupon_code,omitempty"`
	AffiliateRef string `json:"affiliate_ref,omitempty"`
}

func FromCheckoutStatus(st *commands.CheckoutStatus) *CheckoutStatusResponse {
	res := &CheckoutStatusResponse{
		State:    string(st.State),
		Problems: st.Problems,
		Emitted:  st.Emitted,
	}
	if res.Problems == nil {
		res.Problems = []string{}
	}
	if st.SessionID != uuid.Nil {
		id := st.SessionID.String()
		res.SessionID = &id
	}
	return res
}

func FromCompletion(r *commands.CompletionResult) *CompletionResponse {
	return &CompletionResponse{
		SessionID:    r.SessionID.String(),
		Total:        Money(r.Total),
		CouponCode:   r.CouponCode,
		AffiliateRef: r.AffiliateRef,
	}
}
