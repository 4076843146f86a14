package order

import "context"

// Repository is the order store contract.
type Repository interface {
	// Save persists the aggregate and its items. A new aggregate
	// (version 0) is inserted; the unique index on the order number is
	// the authoritative uniqueness guard and surfaces as
	// ErrDuplicateNumber. Updates are guarded by the optimistic lock
	// version and surface ErrConcurrentModification on a lost race.
	Save(ctx context.Context, o *Order) error

	// FindByID loads an order with its items. Returns ErrOrderNotFound
	// when absent.
	FindByID(ctx context.Context, id string) (*Order, error)

	// FindByUserID lists a user's orders, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*Order, error)

	// ExistsByNumber reports whether an order already holds the number.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
