package catalog

import "context"

// Repository is the stock ledger's storage contract.
//
// ReserveStock and ReleaseStock are the only ways application code may
// mutate stock. Implementations must make ReserveStock an atomic
// compare-and-decrement: the stock check and the decrement happen in one
// conditional write, so no interleaving caller can observe a stale value
// between check and decrement.
type Repository interface {
	// FindByID loads a product. Returns ErrProductNotFound when absent.
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindAll lists the catalog.
	FindAll(ctx context.Context) ([]*Product, error)

	// Save persists a new or updated product. Save never writes the
	// stock column for existing rows; stock moves only through
	// ReserveStock/ReleaseStock.
	Save(ctx context.Context, product *Product) error

	// ReserveStock atomically decrements stock by quantity.
	// Fails with ErrProductNotFound, ErrProductInactive or
	// ErrInsufficientStock; on failure stock is untouched.
	ReserveStock(ctx context.Context, id string, quantity int) error

	// ReleaseStock atomically increments stock by quantity. It is only
	// called for quantities previously reserved and cannot fail under
	// normal operation, short of the product row having vanished.
	ReleaseStock(ctx context.Context, id string, quantity int) error
}
