package shared

import "context"

// UnitOfWork manages the transaction boundary for a business operation.
// Every store access made inside fn sees the same transaction, injected
// through the context by the concrete implementation.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// UnitOfWorkFactory produces a fresh UnitOfWork per operation.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}
