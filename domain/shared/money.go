package shared

import (
	"errors"
	"fmt"
)

// Money value object. Amounts are stored in the smallest currency unit
// (e.g. cents) so arithmetic never drifts through floating point.
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a new Money value object
func NewMoney(amount int64, currency string) *Money {
	return &Money{
		amount:   amount,
		currency: currency,
	}
}

// Zero returns a zero amount in the given currency
func Zero(currency string) Money {
	return Money{amount: 0, currency: currency}
}

// Amount returns the amount in minor units
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum as a new Money value object
func (m Money) Add(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.New("cannot add money with different currencies")
	}

	return &Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
	}, nil
}

// Subtract returns the difference as a new Money value object
func (m Money) Subtract(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.New("cannot subtract money with different currencies")
	}

	return &Money{
		amount:   m.amount - other.amount,
		currency: m.currency,
	}, nil
}

// Multiply scales the amount by a quantity, guarding against overflow
func (m Money) Multiply(quantity int) (*Money, error) {
	if quantity < 0 {
		return nil, errors.New("quantity must not be negative")
	}
	if quantity != 0 && m.amount > 0 && m.amount > (1<<62)/int64(quantity) {
		return nil, fmt.Errorf("money overflow: %d * %d", m.amount, quantity)
	}

	return &Money{
		amount:   m.amount * int64(quantity),
		currency: m.currency,
	}, nil
}

// MulBasisPoints applies a rate expressed in basis points (1900 = 19%).
// The result is truncated toward zero, matching integer tax rounding.
func (m Money) MulBasisPoints(bp int64) Money {
	return Money{
		amount:   m.amount * bp / 10000,
		currency: m.currency,
	}
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsGreaterThan compares against another amount
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount > other.amount
}

// IsGreaterThanOrEqual compares against another amount
func (m Money) IsGreaterThanOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// Equals compares two Money value objects
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}
