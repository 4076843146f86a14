package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const (
	defaultNumberPrefix  = "ORD"
	defaultSuffixDigits  = 6
	defaultWidenAfter    = 3
	defaultMaxAttempts   = 10
	widenedExtraDigits   = 3
)

// NumberGenerator produces human-readable, globally unique order numbers
// of the form <prefix><YYMMDD><random digits>.
//
// The existence check is an optimization, not the safety net: two
// concurrent generators can both pass it before either inserts, so the
// storage layer's unique index stays authoritative and the builder
// redraws on ErrDuplicateNumber. Collisions are expected to be rare
// (the suffix space dwarfs daily order volume); after widenAfter misses
// the suffix widens by three digits, and after maxAttempts total the
// generator gives up with ErrNumberSpaceExhausted rather than spin.
type NumberGenerator struct {
	orders       Repository
	prefix       string
	suffixDigits int
	widenAfter   int
	maxAttempts  int
	now          func() time.Time
	intn         func(n int64) int64
}

// NumberGeneratorOption customizes a NumberGenerator.
type NumberGeneratorOption func(*NumberGenerator)

// WithNumberFormat sets prefix and base suffix width.
func WithNumberFormat(prefix string, suffixDigits int) NumberGeneratorOption {
	return func(g *NumberGenerator) {
		if prefix != "" {
			g.prefix = prefix
		}
		if suffixDigits > 0 {
			g.suffixDigits = suffixDigits
		}
	}
}

// WithNumberBounds sets the widening threshold and the attempt cap.
func WithNumberBounds(widenAfter, maxAttempts int) NumberGeneratorOption {
	return func(g *NumberGenerator) {
		if widenAfter > 0 {
			g.widenAfter = widenAfter
		}
		if maxAttempts > 0 {
			g.maxAttempts = maxAttempts
		}
	}
}

// WithNumberClock fixes the clock, for tests.
func WithNumberClock(now func() time.Time) NumberGeneratorOption {
	return func(g *NumberGenerator) { g.now = now }
}

// WithNumberRand fixes the random source, for tests.
func WithNumberRand(intn func(n int64) int64) NumberGeneratorOption {
	return func(g *NumberGenerator) { g.intn = intn }
}

// NewNumberGenerator creates a generator drawing against the order store.
func NewNumberGenerator(orders Repository, opts ...NumberGeneratorOption) *NumberGenerator {
	g := &NumberGenerator{
		orders:       orders,
		prefix:       defaultNumberPrefix,
		suffixDigits: defaultSuffixDigits,
		widenAfter:   defaultWidenAfter,
		maxAttempts:  defaultMaxAttempts,
		now:          time.Now,
		intn:         rand.Int63n,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws order numbers until one is unused or the attempt cap is
// reached.
func (g *NumberGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		number := g.draw(attempt)

		exists, err := g.orders.ExistsByNumber(ctx, number)
		if err != nil {
			return "", fmt.Errorf("order number existence check: %w", err)
		}
		if !exists {
			return number, nil
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrNumberSpaceExhausted, g.maxAttempts)
}

// draw composes one candidate. Later attempts draw from a wider space.
func (g *NumberGenerator) draw(attempt int) string {
	digits := g.suffixDigits
	if attempt > g.widenAfter {
		digits += widenedExtraDigits
	}

	space := int64(1)
	for i := 0; i < digits; i++ {
		space *= 10
	}

	return fmt.Sprintf("%s%s%0*d", g.prefix, g.now().Format("060102"), digits, g.intn(space))
}
