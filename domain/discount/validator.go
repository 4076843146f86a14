package discount

import (
	"context"
	"time"

	"storefront/domain/shared"
)

// Validator evaluates and redeems discount codes. It is a domain service:
// it reads through the repository and performs the one mutation the
// subdomain owns, the usage increment. Apply is meant to run inside the
// caller's transaction so the increment commits or rolls back together
// with the order that spends it.
type Validator struct {
	codes Repository
	now   func() time.Time
}

// NewValidator creates a discount validator.
func NewValidator(codes Repository) *Validator {
	return &Validator{codes: codes, now: time.Now}
}

// NewValidatorAt creates a validator with a fixed clock, for tests.
func NewValidatorAt(codes Repository, now func() time.Time) *Validator {
	return &Validator{codes: codes, now: now}
}

// Check evaluates redeemability without spending the code. Returns the
// discount amount the code would yield for the subtotal.
func (v *Validator) Check(ctx context.Context, code string, subtotal shared.Money) (shared.Money, *Code, error) {
	c, err := v.codes.FindByCode(ctx, code)
	if err != nil {
		return shared.Zero(subtotal.Currency()), nil, err
	}
	if err := c.Redeemable(subtotal, v.now()); err != nil {
		return shared.Zero(subtotal.Currency()), nil, err
	}
	return c.AmountFor(subtotal), c, nil
}

// Apply redeems the code against the subtotal: it evaluates
// redeemability, computes the clamped amount and spends one use through
// the atomic counter increment. The increment re-checks the cap, so a
// concurrent redemption that slipped past Redeemable still fails with
// ErrUsageCapReached.
func (v *Validator) Apply(ctx context.Context, code string, subtotal shared.Money) (shared.Money, *Code, error) {
	amount, c, err := v.Check(ctx, code, subtotal)
	if err != nil {
		return amount, nil, err
	}

	if err := v.codes.IncrementUsage(ctx, code); err != nil {
		return shared.Zero(subtotal.Currency()), nil, err
	}

	return amount, c, nil
}
