package discount

import "errors"

// Sentinel errors for the discount subdomain, used with errors.Is().
// All rejections except ErrInvalidCode are "soft" in the order-creation
// path: the order builder degrades them to a zero discount instead of
// aborting the order.
var (
	// ErrCodeNotFound no discount code exists under the given string
	ErrCodeNotFound = errors.New("discount code not found")

	// ErrCodeInactive the code exists but has been deactivated
	ErrCodeInactive = errors.New("discount code is not active")

	// ErrOutsideValidityWindow the current time is outside [validFrom, validUntil]
	ErrOutsideValidityWindow = errors.New("discount code is outside its validity window")

	// ErrUsageCapReached the usage counter has reached the configured cap
	ErrUsageCapReached = errors.New("discount code usage cap reached")

	// ErrBelowMinimumAmount the order subtotal is below the code's minimum
	ErrBelowMinimumAmount = errors.New("order subtotal below discount code minimum")

	// ErrInvalidCode the code definition fails validation
	ErrInvalidCode = errors.New("invalid discount code definition")
)

// IsRejection reports whether err is one of the redeemability rejections
// that degrade to a zero discount during order creation.
func IsRejection(err error) bool {
	return errors.Is(err, ErrCodeNotFound) ||
		errors.Is(err, ErrCodeInactive) ||
		errors.Is(err, ErrOutsideValidityWindow) ||
		errors.Is(err, ErrUsageCapReached) ||
		errors.Is(err, ErrBelowMinimumAmount)
}
