package order

import (
	"testing"

	"storefront/domain/shared"
)

func TestPricingSubtotal(t *testing.T) {
	calc := NewPricingCalculator(1900, 5000, "EUR")

	specs := []ItemSpec{
		{ProductID: "p-1", ProductName: "A", Quantity: 2, UnitPrice: *shared.NewMoney(30000, "EUR")},
		{ProductID: "p-2", ProductName: "B", Quantity: 4, UnitPrice: *shared.NewMoney(10000, "EUR")},
	}

	subtotal, err := calc.Subtotal(specs)
	if err != nil {
		t.Fatalf("Subtotal failed: %v", err)
	}
	if subtotal.Amount() != 100000 {
		t.Errorf("expected 100000, got %d", subtotal.Amount())
	}

	if _, err := calc.Subtotal([]ItemSpec{{Quantity: 0, UnitPrice: *shared.NewMoney(100, "EUR")}}); err == nil {
		t.Error("expected error for zero quantity")
	}
}

func TestPricingPrice(t *testing.T) {
	calc := NewPricingCalculator(1900, 5000, "EUR")

	// 1000.00 subtotal, 100.00 discount, 19% tax, 50.00 shipping:
	// tax base 900.00, tax 171.00, total 1121.00
	subtotal := *shared.NewMoney(100000, "EUR")
	discount := *shared.NewMoney(10000, "EUR")

	totals, err := calc.Price(subtotal, discount)
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if totals.Tax.Amount() != 17100 {
		t.Errorf("expected tax 17100, got %d", totals.Tax.Amount())
	}
	if totals.Shipping.Amount() != 5000 {
		t.Errorf("expected shipping 5000, got %d", totals.Shipping.Amount())
	}
	if totals.Total.Amount() != 112100 {
		t.Errorf("expected total 112100, got %d", totals.Total.Amount())
	}

	t.Log("✓ Pricing tests passed")
}

func TestPricingRecomposition(t *testing.T) {
	calc := NewPricingCalculator(1900, 5000, "EUR")

	cases := []struct {
		subtotal int64
		discount int64
	}{
		{100000, 0},
		{100000, 10000},
		{99, 0},
		{1, 1},
		{50000, 50000},
	}

	for _, tc := range cases {
		totals, err := calc.Price(*shared.NewMoney(tc.subtotal, "EUR"), *shared.NewMoney(tc.discount, "EUR"))
		if err != nil {
			t.Fatalf("Price(%d, %d) failed: %v", tc.subtotal, tc.discount, err)
		}

		// total must recompose exactly from its components
		want := (tc.subtotal - tc.discount) + totals.Tax.Amount() + totals.Shipping.Amount()
		if totals.Total.Amount() != want {
			t.Errorf("Price(%d, %d): total %d does not recompose to %d",
				tc.subtotal, tc.discount, totals.Total.Amount(), want)
		}
	}
}

func TestPricingRejectsInvalidDiscount(t *testing.T) {
	calc := NewPricingCalculator(1900, 5000, "EUR")
	subtotal := *shared.NewMoney(10000, "EUR")

	if _, err := calc.Price(subtotal, *shared.NewMoney(10001, "EUR")); err == nil {
		t.Error("expected error for discount exceeding subtotal")
	}
	if _, err := calc.Price(subtotal, *shared.NewMoney(-1, "EUR")); err == nil {
		t.Error("expected error for negative discount")
	}
	if _, err := calc.Price(*shared.NewMoney(10000, "USD"), *shared.NewMoney(0, "USD")); err == nil {
		t.Error("expected error for currency mismatch")
	}
}
