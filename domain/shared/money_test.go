package shared

import "testing"

func TestMoneyAddSubtract(t *testing.T) {
	a := NewMoney(10000, "EUR")
	b := NewMoney(2500, "EUR")

	sum, err := a.Add(*b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sum.Amount() != 12500 {
		t.Errorf("expected 12500, got %d", sum.Amount())
	}

	diff, err := a.Subtract(*b)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	if diff.Amount() != 7500 {
		t.Errorf("expected 7500, got %d", diff.Amount())
	}

	t.Log("✓ Money add/subtract tests passed")
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	eur := NewMoney(1000, "EUR")
	usd := NewMoney(1000, "USD")

	if _, err := eur.Add(*usd); err == nil {
		t.Error("expected error adding different currencies")
	}
	if _, err := eur.Subtract(*usd); err == nil {
		t.Error("expected error subtracting different currencies")
	}
	if eur.Equals(*usd) {
		t.Error("amounts in different currencies must not be equal")
	}
}

func TestMoneyMultiply(t *testing.T) {
	price := NewMoney(2999, "EUR")

	total, err := price.Multiply(3)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	if total.Amount() != 8997 {
		t.Errorf("expected 8997, got %d", total.Amount())
	}

	zero, err := price.Multiply(0)
	if err != nil {
		t.Fatalf("Multiply by zero failed: %v", err)
	}
	if zero.Amount() != 0 {
		t.Errorf("expected 0, got %d", zero.Amount())
	}

	if _, err := price.Multiply(-1); err == nil {
		t.Error("expected error for negative quantity")
	}

	huge := NewMoney(1<<62-1, "EUR")
	if _, err := huge.Multiply(1000); err == nil {
		t.Error("expected overflow error")
	}
}

func TestMoneyMulBasisPoints(t *testing.T) {
	// 19% of 900.00 is exactly 171.00
	base := NewMoney(90000, "EUR")
	tax := base.MulBasisPoints(1900)
	if tax.Amount() != 17100 {
		t.Errorf("expected 17100, got %d", tax.Amount())
	}

	// truncation toward zero, never rounding up
	odd := NewMoney(99, "EUR")
	if got := odd.MulBasisPoints(1900).Amount(); got != 18 {
		t.Errorf("expected truncated 18, got %d", got)
	}

	if got := Zero("EUR").MulBasisPoints(1900).Amount(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(100, "EUR")
	b := NewMoney(50, "EUR")

	if !a.IsGreaterThan(*b) {
		t.Error("100 should be greater than 50")
	}
	if !a.IsGreaterThanOrEqual(*a) {
		t.Error("100 should be greater than or equal to itself")
	}
	if a.IsNegative() {
		t.Error("100 is not negative")
	}
	if !NewMoney(-1, "EUR").IsNegative() {
		t.Error("-1 should be negative")
	}
}
