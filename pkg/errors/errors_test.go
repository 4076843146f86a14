package errors

import (
	stderrors "errors"
	"testing"

	"storefront/domain/catalog"
	"storefront/domain/discount"
	"storefront/domain/order"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := stderrors.New("row not found")
	err := Wrap(cause, CodeOrderNotFound, "order not found")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause must be reachable through errors.Is")
	}
	if !Is(err, CodeOrderNotFound) {
		t.Error("Is() must match the carried code")
	}
	if Is(err, CodeInternal) {
		t.Error("Is() must not match a different code")
	}
	if Is(cause, CodeOrderNotFound) {
		t.Error("a bare error carries no code")
	}
}

func TestFromDomainError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"product not found", catalog.ErrProductNotFound, CodeProductNotFound},
		{"product inactive", catalog.ErrProductInactive, CodeProductInactive},
		{"insufficient stock", catalog.ErrInsufficientStock, CodeInsufficientStock},
		{"discount not found", discount.ErrCodeNotFound, CodeDiscountNotFound},
		{"usage cap", discount.ErrUsageCapReached, CodeDiscountRejected},
		{"validity window", discount.ErrOutsideValidityWindow, CodeDiscountRejected},
		{"order not found", order.ErrOrderNotFound, CodeOrderNotFound},
		{"forbidden", order.ErrForbidden, CodeForbidden},
		{"invalid transition", order.ErrInvalidStateTransition, CodeInvalidOrderState},
		{"concurrent modification", order.ErrConcurrentModification, CodeConcurrentModify},
		{"number exhausted", order.ErrNumberSpaceExhausted, CodeOrderNumberExhausted},
		{"unknown error", stderrors.New("boom"), CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := FromDomainError(tc.err)
			if appErr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, appErr.Code)
			}
			if tc.err != nil && !stderrors.Is(appErr, tc.err) {
				t.Error("original error must remain in the chain")
			}
		})
	}

	if FromDomainError(nil) != nil {
		t.Error("nil must map to nil")
	}

	// AppErrors pass through untouched
	original := New(CodeValidation, "bad input")
	if got := FromDomainError(original); got != original {
		t.Error("existing AppError must pass through")
	}

	t.Log("✓ Error mapping tests passed")
}

func TestAsAppError(t *testing.T) {
	appErr := AsAppError(stderrors.New("mystery"))
	if appErr.Code != CodeInternal {
		t.Errorf("unknown errors become internal, got %s", appErr.Code)
	}

	known := NotFound("gone")
	if got := AsAppError(known); got != known {
		t.Error("AppError must pass through AsAppError")
	}
}
