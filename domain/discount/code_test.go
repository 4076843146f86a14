package discount

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/domain/shared"
)

func validWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.Add(-time.Hour), now.Add(time.Hour)
}

func TestNewCodeValidation(t *testing.T) {
	from, until := validWindow()

	if _, err := NewCode("", KindPercentage, 10, from, until, CodeOptions{}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for empty code")
	}
	if _, err := NewCode("X", Kind("BOGUS"), 10, from, until, CodeOptions{}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for unknown kind")
	}
	if _, err := NewCode("X", KindPercentage, 101, from, until, CodeOptions{}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for percentage above 100")
	}
	if _, err := NewCode("X", KindFixedAmount, 0, from, until, CodeOptions{}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for non-positive value")
	}
	if _, err := NewCode("X", KindPercentage, 10, until, from, CodeOptions{}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for inverted validity window")
	}
	zero := 0
	if _, err := NewCode("X", KindPercentage, 10, from, until, CodeOptions{MaxUses: &zero}); !errors.Is(err, ErrInvalidCode) {
		t.Error("expected ErrInvalidCode for non-positive max uses")
	}

	t.Log("✓ Code validation tests passed")
}

func TestCodeRedeemable(t *testing.T) {
	from, until := validWindow()
	subtotal := *shared.NewMoney(50000, "EUR")

	code, err := NewCode("SAVE10", KindPercentage, 10, from, until, CodeOptions{})
	if err != nil {
		t.Fatalf("NewCode failed: %v", err)
	}
	if err := code.Redeemable(subtotal, time.Now()); err != nil {
		t.Errorf("expected redeemable, got %v", err)
	}

	if err := code.Redeemable(subtotal, until.Add(time.Minute)); !errors.Is(err, ErrOutsideValidityWindow) {
		t.Errorf("expected ErrOutsideValidityWindow, got %v", err)
	}
	if err := code.Redeemable(subtotal, from.Add(-time.Minute)); !errors.Is(err, ErrOutsideValidityWindow) {
		t.Errorf("expected ErrOutsideValidityWindow, got %v", err)
	}

	minAmount := shared.NewMoney(100000, "EUR")
	capped, _ := NewCode("BIGSPEND", KindPercentage, 10, from, until, CodeOptions{MinAmount: minAmount})
	if err := capped.Redeemable(subtotal, time.Now()); !errors.Is(err, ErrBelowMinimumAmount) {
		t.Errorf("expected ErrBelowMinimumAmount, got %v", err)
	}

	one := 1
	exhausted := RebuildFromDTO(ReconstructionDTO{
		ID: "d-1", Code: "ONCE", Kind: KindPercentage, Value: 10,
		MaxUses: &one, UsedCount: 1,
		ValidFrom: from, ValidUntil: until, Active: true,
	})
	if err := exhausted.Redeemable(subtotal, time.Now()); !errors.Is(err, ErrUsageCapReached) {
		t.Errorf("expected ErrUsageCapReached, got %v", err)
	}

	inactive := RebuildFromDTO(ReconstructionDTO{
		ID: "d-2", Code: "OFF", Kind: KindPercentage, Value: 10,
		ValidFrom: from, ValidUntil: until, Active: false,
	})
	if err := inactive.Redeemable(subtotal, time.Now()); !errors.Is(err, ErrCodeInactive) {
		t.Errorf("expected ErrCodeInactive, got %v", err)
	}
}

func TestCodeAmountFor(t *testing.T) {
	from, until := validWindow()
	subtotal := *shared.NewMoney(50000, "EUR")

	// 10% of 500.00 is 50.00
	percent, _ := NewCode("SAVE10", KindPercentage, 10, from, until, CodeOptions{})
	if got := percent.AmountFor(subtotal).Amount(); got != 5000 {
		t.Errorf("expected 5000, got %d", got)
	}

	fixed, _ := NewCode("MINUS20", KindFixedAmount, 2000, from, until, CodeOptions{})
	if got := fixed.AmountFor(subtotal).Amount(); got != 2000 {
		t.Errorf("expected 2000, got %d", got)
	}

	// clamped to the configured cap
	maxDiscount := shared.NewMoney(3000, "EUR")
	capped, _ := NewCode("SAVE10C", KindPercentage, 10, from, until, CodeOptions{MaxDiscount: maxDiscount})
	if got := capped.AmountFor(subtotal).Amount(); got != 3000 {
		t.Errorf("expected cap 3000, got %d", got)
	}

	// never exceeds the subtotal
	huge, _ := NewCode("GIFT", KindFixedAmount, 99999, from, until, CodeOptions{})
	if got := huge.AmountFor(*shared.NewMoney(1000, "EUR")).Amount(); got != 1000 {
		t.Errorf("expected clamp to subtotal 1000, got %d", got)
	}
}

// fakeCodeRepo minimal in-memory repository for validator tests.
type fakeCodeRepo struct {
	codes      map[string]*Code
	increments int
}

func (f *fakeCodeRepo) FindByCode(_ context.Context, code string) (*Code, error) {
	c, ok := f.codes[code]
	if !ok {
		return nil, ErrCodeNotFound
	}
	return c, nil
}

func (f *fakeCodeRepo) FindAll(_ context.Context) ([]*Code, error) { return nil, nil }
func (f *fakeCodeRepo) Save(_ context.Context, _ *Code) error      { return nil }

func (f *fakeCodeRepo) IncrementUsage(_ context.Context, code string) error {
	c, ok := f.codes[code]
	if !ok {
		return ErrCodeNotFound
	}
	if c.maxUses != nil && c.usedCount >= *c.maxUses {
		return ErrUsageCapReached
	}
	c.usedCount++
	f.increments++
	return nil
}

func TestValidatorCheckAndApply(t *testing.T) {
	from, until := validWindow()
	code, _ := NewCode("SAVE10", KindPercentage, 10, from, until, CodeOptions{})
	repo := &fakeCodeRepo{codes: map[string]*Code{"SAVE10": code}}
	validator := NewValidator(repo)

	subtotal := *shared.NewMoney(50000, "EUR")

	amount, _, err := validator.Check(context.Background(), "SAVE10", subtotal)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if amount.Amount() != 5000 {
		t.Errorf("expected 5000, got %d", amount.Amount())
	}
	if repo.increments != 0 {
		t.Error("Check must not spend a use")
	}

	amount, _, err = validator.Apply(context.Background(), "SAVE10", subtotal)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if amount.Amount() != 5000 {
		t.Errorf("expected 5000, got %d", amount.Amount())
	}
	if repo.increments != 1 {
		t.Errorf("expected exactly one increment, got %d", repo.increments)
	}

	if _, _, err := validator.Check(context.Background(), "NOPE", subtotal); !errors.Is(err, ErrCodeNotFound) {
		t.Errorf("expected ErrCodeNotFound, got %v", err)
	}

	t.Log("✓ Validator tests passed")
}

func TestIsRejection(t *testing.T) {
	for _, err := range []error{ErrCodeNotFound, ErrCodeInactive, ErrOutsideValidityWindow, ErrUsageCapReached, ErrBelowMinimumAmount} {
		if !IsRejection(err) {
			t.Errorf("%v should be a soft rejection", err)
		}
	}
	if IsRejection(ErrInvalidCode) {
		t.Error("ErrInvalidCode is a definition error, not a rejection")
	}
}
