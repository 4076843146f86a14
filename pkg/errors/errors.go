/*
Package errors defines the application error type and the closed set of
error codes the API layer maps to transport status codes. Domain packages
expose sentinel errors; FromDomainError folds them into coded AppErrors at
the application boundary so HTTP concerns never leak into the core.
*/
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode Application error code
type ErrorCode string

const (
	// Generic codes
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"

	// Catalog codes
	CodeProductNotFound   ErrorCode = "PRODUCT_NOT_FOUND"
	CodeProductInactive   ErrorCode = "PRODUCT_INACTIVE"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"

	// Discount codes
	CodeDiscountNotFound ErrorCode = "DISCOUNT_NOT_FOUND"
	CodeDiscountRejected ErrorCode = "DISCOUNT_REJECTED"

	// Order codes
	CodeOrderNotFound        ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidOrderState    ErrorCode = "INVALID_ORDER_STATE"
	CodeConcurrentModify     ErrorCode = "CONCURRENT_MODIFICATION"
	CodeOrderNumberExhausted ErrorCode = "ORDER_NUMBER_EXHAUSTED"
)

// AppError Application error carrying a code, a user-visible message and
// an optional wrapped cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with a code and message
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common constructors

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

// Is reports whether err carries the given error code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// AsAppError converts an error into an AppError, wrapping unknown errors
// as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}
