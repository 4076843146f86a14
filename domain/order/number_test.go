package order

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeOrderStore implements just enough of Repository for the generator.
type fakeOrderStore struct {
	taken map[string]bool
}

func (f *fakeOrderStore) Save(_ context.Context, _ *Order) error              { return nil }
func (f *fakeOrderStore) FindByID(_ context.Context, _ string) (*Order, error) { return nil, ErrOrderNotFound }
func (f *fakeOrderStore) FindByUserID(_ context.Context, _ string) ([]*Order, error) {
	return nil, nil
}

func (f *fakeOrderStore) ExistsByNumber(_ context.Context, number string) (bool, error) {
	return f.taken[number], nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
}

func TestGenerateFormat(t *testing.T) {
	gen := NewNumberGenerator(&fakeOrderStore{taken: map[string]bool{}},
		WithNumberClock(fixedClock()),
		WithNumberRand(func(n int64) int64 { return 42 }),
	)

	number, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if number != "ORD260831000042" {
		t.Errorf("expected ORD260831000042, got %s", number)
	}

	t.Log("✓ Number format tests passed")
}

func TestGenerateCustomFormat(t *testing.T) {
	gen := NewNumberGenerator(&fakeOrderStore{taken: map[string]bool{}},
		WithNumberClock(fixedClock()),
		WithNumberFormat("INV", 4),
		WithNumberRand(func(n int64) int64 { return 7 }),
	)

	number, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if number != "INV2608310007" {
		t.Errorf("expected INV2608310007, got %s", number)
	}
}

func TestGenerateRedrawsOnCollision(t *testing.T) {
	store := &fakeOrderStore{taken: map[string]bool{"ORD260831000001": true}}

	draws := []int64{1, 2}
	i := 0
	gen := NewNumberGenerator(store,
		WithNumberClock(fixedClock()),
		WithNumberRand(func(n int64) int64 {
			v := draws[i]
			i++
			return v
		}),
	)

	number, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if number != "ORD260831000002" {
		t.Errorf("expected redraw to ORD260831000002, got %s", number)
	}
}

func TestGenerateWidensSuffix(t *testing.T) {
	// the first widenAfter draws collide; the next draw must come from
	// the widened nine-digit space
	store := &fakeOrderStore{taken: map[string]bool{
		"ORD260831000005": true,
	}}

	var spaces []int64
	gen := NewNumberGenerator(store,
		WithNumberClock(fixedClock()),
		WithNumberBounds(3, 10),
		WithNumberRand(func(n int64) int64 {
			spaces = append(spaces, n)
			return 5
		}),
	)

	number, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if number != "ORD260831000000005" {
		t.Errorf("expected widened ORD260831000000005, got %s", number)
	}
	if len(spaces) != 4 {
		t.Fatalf("expected 4 draws, got %d", len(spaces))
	}
	for i := 0; i < 3; i++ {
		if spaces[i] != 1_000_000 {
			t.Errorf("draw %d should use the 6-digit space, got %d", i, spaces[i])
		}
	}
	if spaces[3] != 1_000_000_000 {
		t.Errorf("draw 4 should use the widened 9-digit space, got %d", spaces[3])
	}

	// the widened number is 9 digits wide even for small draws
	if len(number) != len("ORD")+6+9 {
		t.Errorf("widened number has wrong width: %s", number)
	}
}

func TestGenerateExhaustion(t *testing.T) {
	store := &fakeOrderStore{taken: map[string]bool{}}
	gen := NewNumberGenerator(store,
		WithNumberClock(fixedClock()),
		WithNumberBounds(3, 10),
		WithNumberRand(func(n int64) int64 { return 9 }),
	)

	// every draw lands on the same two candidates; mark both taken
	store.taken["ORD260831000009"] = true
	store.taken["ORD260831000000009"] = true

	_, err := gen.Generate(context.Background())
	if !errors.Is(err, ErrNumberSpaceExhausted) {
		t.Errorf("expected ErrNumberSpaceExhausted, got %v", err)
	}
}
