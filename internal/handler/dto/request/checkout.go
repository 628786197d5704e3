package request

import (
	"storefront-checkout/internal/domain/checkout"

	"github.com/jinzhu/copier"
)

// UpdateFormRequest carries the whole checkout form on every change. Fields
// may be empty while the shopper is still typing.
type UpdateFormRequest struct {
	Name  string `json:"name" binding:"max=200"`
	Email string `json:"email" binding:"max=254"`
	Phone string `json:"phone" binding:"max=32"`
}

func (r UpdateFormRequest) ToContact() (checkout.Contact, error) {
	var contact checkout.Contact
	if err := copier.Copy(&contact, &r); err != nil {
		return checkout.Contact{}, err
	}
	return contact.Normalize(), nil
}

type FlushRequest struct {
	Reason string `json:"reason" binding:"required,oneof=visibility_hidden beforeunload"`
}
