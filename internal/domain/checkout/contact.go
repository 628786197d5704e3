package checkout

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
	ErrPhoneRequired = errors.New("phone is required")
	ErrInvalidPhone  = errors.New("phone has too few digits")
	ErrEmptyCart     = errors.New("cart has no items")
)

// Contact is the customer snapshot captured from the checkout form.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"email"`
	Phone string `json:"phone"`
}

func (c Contact) Normalize() Contact {
	return Contact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

type Validator struct {
	validate       *validator.Validate
	minPhoneDigits int
}

func NewValidator(minPhoneDigits int) *Validator {
	return &Validator{
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		minPhoneDigits: minPhoneDigits,
	}
}

// Problems lists every reason the form cannot start a checkout. An empty
// result means the Idle -> Pending guard holds.
func (v *Validator) Problems(c Contact, lineCount int) []error {
	c = c.Normalize()

	var problems []error
	if c.Name == "" {
		problems = append(problems, ErrNameRequired)
	}

	switch {
	case c.Email == "":
		problems = append(problems, ErrEmailRequired)
	case v.validate.Var(c.Email, "email") != nil:
		problems = append(problems, ErrInvalidEmail)
	}

	switch {
	case c.Phone == "":
		problems = append(problems, ErrPhoneRequired)
	case PhoneDigits(c.Phone) < v.minPhoneDigits:
		problems = append(problems, ErrInvalidPhone)
	}

	if lineCount < 1 {
		problems = append(problems, ErrEmptyCart)
	}
	return problems
}

func (v *Validator) IsValid(c Contact, lineCount int) bool {
	return len(v.Problems(c, lineCount)) == 0
}

// PhoneDigits counts digits only, so "+1 (555) 010-2030" has 11.
func PhoneDigits(phone string) int {
	n := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
