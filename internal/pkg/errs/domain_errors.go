package errs

import "errors"

// Sentinels shared by the usecase and handler layers
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")

	// Coupon errors
	ErrInvalidCoupon = errors.New("invalid coupon")
	ErrLookupFailed  = errors.New("coupon lookup failed")

	// Checkout errors
	ErrNoActiveSession = errors.New("no active checkout session")

	// Persistence errors
	ErrCartPersistence         = errors.New("cart persistence failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
