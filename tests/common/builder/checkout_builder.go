//go:build unit || e2e

package builder

import (
	"storefront-checkout/internal/domain/checkout"
	reqdto "storefront-checkout/internal/handler/dto/request"
	"storefront-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutFormBuilder struct {
	Name  string
	Email string
	Phone string
}

func NewCheckoutFormBuilder() *CheckoutFormBuilder {
	return &CheckoutFormBuilder{
		Name:  "Dana Whitfield",
		Email: "dana@example.com",
		Phone: "+1 (555) 010-2030",
	}
}

func (f *CheckoutFormBuilder) With(mutate func(*CheckoutFormBuilder)) *CheckoutFormBuilder {
	mutate(f)
	return f
}

func (f *CheckoutFormBuilder) WithEmail(email string) *CheckoutFormBuilder {
	f.Email = email
	return f
}

func (f *CheckoutFormBuilder) WithPhone(phone string) *CheckoutFormBuilder {
	f.Phone = phone
	return f
}

func (f *CheckoutFormBuilder) BuildDomain() checkout.Contact {
	return checkout.Contact{Name: f.Name, Email: f.Email, Phone: f.Phone}
}

func (f *CheckoutFormBuilder) BuildRequestDTO() reqdto.UpdateFormRequest {
	return reqdto.UpdateFormRequest{Name: f.Name, Email: f.Email, Phone: f.Phone}
}

func IdleStatus() *commands.CheckoutStatus {
	return &commands.CheckoutStatus{State: checkout.StateIdle}
}

func StartedStatus(sessionID uuid.UUID) *commands.CheckoutStatus {
	return &commands.CheckoutStatus{State: checkout.StateStarted, SessionID: sessionID, Emitted: true}
}
