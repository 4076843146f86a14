package order

import "errors"

// Sentinel errors for the order subdomain, used with errors.Is().
var (
	// ErrOrderNotFound no order exists under the given id
	ErrOrderNotFound = errors.New("order not found")

	// ErrForbidden the caller is neither the order's owner nor an admin
	ErrForbidden = errors.New("caller may not access this order")

	// ErrInvalidStateTransition the requested status change is not
	// permitted from the order's current state
	ErrInvalidStateTransition = errors.New("invalid order state transition")

	// ErrEmptyOrderItems an order must have at least one item
	ErrEmptyOrderItems = errors.New("order must have at least one item")

	// ErrInvalidQuantity item quantities must be positive
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidPaymentStatus the reported payment status is not a known value
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidDeliveryStatus the requested delivery status is not a known value
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")

	// ErrDuplicateNumber another order already holds this order number.
	// Raised by the storage layer's unique constraint; the builder
	// redraws the number and retries within the generator's bound.
	ErrDuplicateNumber = errors.New("order number already exists")

	// ErrNumberSpaceExhausted the generator gave up after its attempt
	// cap. Treated as an infrastructure fault, not a user error.
	ErrNumberSpaceExhausted = errors.New("order number space exhausted")

	// ErrConcurrentModification the order was modified by another
	// transaction; the caller should retry
	ErrConcurrentModification = errors.New("order was modified by another transaction, please retry")
)
