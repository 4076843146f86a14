package errors

import (
	"errors"

	"storefront/domain/catalog"
	"storefront/domain/discount"
	"storefront/domain/order"
)

// FromDomainError folds a domain sentinel error into a coded AppError.
// Unknown errors become CodeInternal; AppErrors pass through untouched.
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		return Wrap(err, CodeProductNotFound, "product not found")
	case errors.Is(err, catalog.ErrProductInactive):
		return Wrap(err, CodeProductInactive, "product is not available for sale")
	case errors.Is(err, catalog.ErrInsufficientStock):
		return Wrap(err, CodeInsufficientStock, "insufficient stock")
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, catalog.ErrInvalidQuantity):
		return Wrap(err, CodeValidation, err.Error())

	case errors.Is(err, discount.ErrCodeNotFound):
		return Wrap(err, CodeDiscountNotFound, "discount code not found")
	case discount.IsRejection(err):
		return Wrap(err, CodeDiscountRejected, err.Error())
	case errors.Is(err, discount.ErrInvalidCode):
		return Wrap(err, CodeValidation, err.Error())

	case errors.Is(err, order.ErrOrderNotFound):
		return Wrap(err, CodeOrderNotFound, "order not found")
	case errors.Is(err, order.ErrForbidden):
		return Wrap(err, CodeForbidden, "access denied")
	case errors.Is(err, order.ErrInvalidStateTransition):
		return Wrap(err, CodeInvalidOrderState, "order state does not allow this operation")
	case errors.Is(err, order.ErrEmptyOrderItems),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidPaymentStatus),
		errors.Is(err, order.ErrInvalidDeliveryStatus):
		return Wrap(err, CodeValidation, err.Error())
	case errors.Is(err, order.ErrConcurrentModification):
		return Wrap(err, CodeConcurrentModify, "order was modified concurrently, please retry")
	case errors.Is(err, order.ErrNumberSpaceExhausted):
		return Wrap(err, CodeOrderNumberExhausted, "could not allocate an order number")
	case errors.Is(err, order.ErrDuplicateNumber):
		return Wrap(err, CodeConflict, "order number already taken")
	}

	return Wrap(err, CodeInternal, "internal server error")
}
