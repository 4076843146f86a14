/*
Package discount - promotional discount code subdomain.

A discount code is shared across many orders; the usage counter is the only
field an order interaction mutates, and it may never exceed the configured
cap. The counter is incremented through the repository's atomic conditional
update as part of the same transaction that persists the order, so a code
is never spent without an order existing.
*/
package discount

import (
	"fmt"
	"time"

	"storefront/domain/shared"

	"github.com/google/uuid"
)

// Kind discount kind
type Kind string

const (
	KindPercentage  Kind = "PERCENTAGE"   // value is a percentage of the subtotal
	KindFixedAmount Kind = "FIXED_AMOUNT" // value is an amount in minor units
)

// Code discount code entity
type Code struct {
	id          string
	code        string
	kind        Kind
	value       int64        // percentage (0-100) or fixed amount in minor units
	minAmount   *shared.Money // minimum order subtotal, optional
	maxDiscount *shared.Money // cap on the computed discount, optional
	maxUses     *int          // usage cap, optional
	usedCount   int
	validFrom   time.Time
	validUntil  time.Time
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// CodeOptions carries the optional caps for NewCode.
type CodeOptions struct {
	MinAmount   *shared.Money
	MaxDiscount *shared.Money
	MaxUses     *int
}

// NewCode creates a new discount code.
func NewCode(code string, kind Kind, value int64, validFrom, validUntil time.Time, opts CodeOptions) (*Code, error) {
	if code == "" {
		return nil, ErrInvalidCode
	}
	if kind != KindPercentage && kind != KindFixedAmount {
		return nil, ErrInvalidCode
	}
	if value <= 0 {
		return nil, ErrInvalidCode
	}
	if kind == KindPercentage && value > 100 {
		return nil, ErrInvalidCode
	}
	if !validUntil.After(validFrom) {
		return nil, ErrInvalidCode
	}
	if opts.MaxUses != nil && *opts.MaxUses <= 0 {
		return nil, ErrInvalidCode
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate discount code ID: %w", err)
	}

	now := time.Now()
	return &Code{
		id:          id.String(),
		code:        code,
		kind:        kind,
		value:       value,
		minAmount:   opts.MinAmount,
		maxDiscount: opts.MaxDiscount,
		maxUses:     opts.MaxUses,
		usedCount:   0,
		validFrom:   validFrom,
		validUntil:  validUntil,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructionDTO carries persisted state back into the entity.
// For repository-layer use only.
type ReconstructionDTO struct {
	ID          string
	Code        string
	Kind        Kind
	Value       int64
	MinAmount   *shared.Money
	MaxDiscount *shared.Money
	MaxUses     *int
	UsedCount   int
	ValidFrom   time.Time
	ValidUntil  time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildFromDTO reconstructs a Code from persisted state.
func RebuildFromDTO(dto ReconstructionDTO) *Code {
	return &Code{
		id:          dto.ID,
		code:        dto.Code,
		kind:        dto.Kind,
		value:       dto.Value,
		minAmount:   dto.MinAmount,
		maxDiscount: dto.MaxDiscount,
		maxUses:     dto.MaxUses,
		usedCount:   dto.UsedCount,
		validFrom:   dto.ValidFrom,
		validUntil:  dto.ValidUntil,
		active:      dto.Active,
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
	}
}

// Redeemable reports whether the code can be redeemed against the given
// subtotal at the given time, returning the matching rejection otherwise.
// A nil result only means the code looks redeemable; the atomic usage
// increment remains the authoritative guard for the cap.
func (c *Code) Redeemable(subtotal shared.Money, now time.Time) error {
	if !c.active {
		return ErrCodeInactive
	}
	if now.Before(c.validFrom) || now.After(c.validUntil) {
		return ErrOutsideValidityWindow
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrUsageCapReached
	}
	if c.minAmount != nil && !subtotal.IsGreaterThanOrEqual(*c.minAmount) {
		return ErrBelowMinimumAmount
	}
	return nil
}

// AmountFor computes the discount for the given subtotal, clamped to the
// configured cap and never exceeding the subtotal itself.
func (c *Code) AmountFor(subtotal shared.Money) shared.Money {
	var raw shared.Money
	switch c.kind {
	case KindPercentage:
		raw = subtotal.MulBasisPoints(c.value * 100)
	default:
		raw = *shared.NewMoney(c.value, subtotal.Currency())
	}

	if c.maxDiscount != nil && raw.IsGreaterThan(*c.maxDiscount) {
		raw = *c.maxDiscount
	}
	if raw.IsGreaterThan(subtotal) {
		raw = subtotal
	}
	return raw
}

func (c *Code) ID() string                  { return c.id }
func (c *Code) Code() string                { return c.code }
func (c *Code) Kind() Kind                  { return c.kind }
func (c *Code) Value() int64                { return c.value }
func (c *Code) UsedCount() int              { return c.usedCount }
func (c *Code) ValidFrom() time.Time        { return c.validFrom }
func (c *Code) ValidUntil() time.Time       { return c.validUntil }
func (c *Code) IsActive() bool              { return c.active }
func (c *Code) CreatedAt() time.Time        { return c.createdAt }
func (c *Code) UpdatedAt() time.Time        { return c.updatedAt }

// MinAmount returns a copy of the optional minimum order amount.
func (c *Code) MinAmount() *shared.Money {
	if c.minAmount == nil {
		return nil
	}
	v := *c.minAmount
	return &v
}

// MaxDiscount returns a copy of the optional discount cap.
func (c *Code) MaxDiscount() *shared.Money {
	if c.maxDiscount == nil {
		return nil
	}
	v := *c.maxDiscount
	return &v
}

// MaxUses returns a copy of the optional usage cap.
func (c *Code) MaxUses() *int {
	if c.maxUses == nil {
		return nil
	}
	v := *c.maxUses
	return &v
}
