package catalog

import "errors"

// Sentinel errors for the catalog subdomain, used with errors.Is().
var (
	// ErrProductNotFound no product exists under the given id
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive the product exists but is off sale.
	// Distinct from ErrProductNotFound so callers can message
	// "unavailable" rather than "doesn't exist".
	ErrProductInactive = errors.New("product is not active")

	// ErrInsufficientStock the requested quantity exceeds available stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidProduct the product fields fail validation
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidQuantity reserve/release quantities must be positive
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
