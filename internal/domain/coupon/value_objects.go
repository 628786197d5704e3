package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NewCode trims and upper-cases raw input so lookups are case-insensitive.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindCoupon    Kind = "coupon"
	KindAffiliate Kind = "affiliate"
)

func (k Kind) IsValid() bool {
	return k == KindCoupon || k == KindAffiliate
}
