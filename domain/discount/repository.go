package discount

import "context"

// Repository is the discount store contract.
//
// IncrementUsage is the authoritative guard on the usage cap: it must be
// an atomic conditional update so that concurrent redemptions can never
// push the counter past the cap, regardless of what a prior Redeemable
// check observed.
type Repository interface {
	// FindByCode loads a code. Returns ErrCodeNotFound when absent.
	FindByCode(ctx context.Context, code string) (*Code, error)

	// FindAll lists all discount codes.
	FindAll(ctx context.Context) ([]*Code, error)

	// Save persists a new or updated code definition. Save never writes
	// the usage counter for existing rows; that moves only through
	// IncrementUsage.
	Save(ctx context.Context, code *Code) error

	// IncrementUsage atomically increments the usage counter, failing
	// with ErrUsageCapReached when the cap has been reached and
	// ErrCodeNotFound when the code is absent.
	IncrementUsage(ctx context.Context, code string) error
}
