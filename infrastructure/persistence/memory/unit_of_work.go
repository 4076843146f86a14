package memory

import (
	"context"

	"storefront/domain/shared"
)

// UnitOfWork pass-through unit of work. The in-memory store has no
// transactions; each repository call is individually atomic and the
// application layer compensates explicitly when a multi-step operation
// fails partway.
type UnitOfWork struct{}

// NewUnitOfWork creates a pass-through unit of work.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// Execute runs fn directly against the shared store.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// UnitOfWorkFactory produces pass-through units of work.
type UnitOfWorkFactory struct{}

// NewUnitOfWorkFactory creates the factory.
func NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{}
}

// New returns a fresh UnitOfWork.
func (f *UnitOfWorkFactory) New() shared.UnitOfWork {
	return NewUnitOfWork()
}

// Compile-time checks
var (
	_ shared.UnitOfWork        = (*UnitOfWork)(nil)
	_ shared.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)
