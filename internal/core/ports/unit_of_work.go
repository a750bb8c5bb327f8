package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active; it is safe to
	// defer after Commit.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CartRepository() CartRepository
}
