package order

import (
	"fmt"

	"storefront/domain/shared"
)

// Totals holds the priced components of an order. The invariant is
// exact recomposition: Total == (Subtotal - Discount) + Tax + Shipping,
// with Tax == (Subtotal - Discount) * rate in integer arithmetic.
type Totals struct {
	Subtotal shared.Money
	Discount shared.Money
	Shipping shared.Money
	Tax      shared.Money
	Total    shared.Money
}

// PricingCalculator computes order totals from line items and a discount
// amount. It is a pure function over its configured rate and fee; it has
// no side effects and touches no store.
type PricingCalculator struct {
	taxRateBasisPoints int64
	shippingFee        int64
	currency           string
}

// NewPricingCalculator creates a calculator with a fixed tax rate (basis
// points), flat shipping fee (minor units) and currency.
func NewPricingCalculator(taxRateBasisPoints, shippingFee int64, currency string) *PricingCalculator {
	return &PricingCalculator{
		taxRateBasisPoints: taxRateBasisPoints,
		shippingFee:        shippingFee,
		currency:           currency,
	}
}

// Currency returns the calculator's currency code.
func (c *PricingCalculator) Currency() string { return c.currency }

// Subtotal sums the line totals of the given specs.
func (c *PricingCalculator) Subtotal(specs []ItemSpec) (shared.Money, error) {
	sum := shared.Zero(c.currency)
	for _, spec := range specs {
		if spec.Quantity <= 0 {
			return sum, ErrInvalidQuantity
		}
		lineTotal, err := spec.UnitPrice.Multiply(spec.Quantity)
		if err != nil {
			return sum, err
		}
		summed, err := sum.Add(*lineTotal)
		if err != nil {
			return sum, err
		}
		sum = *summed
	}
	return sum, nil
}

// Price computes the full totals for a subtotal and discount amount.
func (c *PricingCalculator) Price(subtotal, discount shared.Money) (Totals, error) {
	if subtotal.Currency() != c.currency || discount.Currency() != c.currency {
		return Totals{}, fmt.Errorf("pricing currency mismatch: %s/%s vs %s", subtotal.Currency(), discount.Currency(), c.currency)
	}
	if discount.IsNegative() {
		return Totals{}, fmt.Errorf("discount must not be negative")
	}
	if discount.IsGreaterThan(subtotal) {
		return Totals{}, fmt.Errorf("discount %d exceeds subtotal %d", discount.Amount(), subtotal.Amount())
	}

	taxBase, err := subtotal.Subtract(discount)
	if err != nil {
		return Totals{}, err
	}
	tax := taxBase.MulBasisPoints(c.taxRateBasisPoints)
	shipping := *shared.NewMoney(c.shippingFee, c.currency)

	total, err := taxBase.Add(tax)
	if err != nil {
		return Totals{}, err
	}
	total, err = total.Add(shipping)
	if err != nil {
		return Totals{}, err
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Tax:      tax,
		Total:    *total,
	}, nil
}
