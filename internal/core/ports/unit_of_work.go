package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DeliveryRepository returns a DeliveryRepository bound to the current
	// transaction started by Begin().
	DeliveryRepository() DeliveryRepository

	// DeliverymanRepository returns a DeliverymanRepository bound to the
	// current transaction started by Begin().
	DeliverymanRepository() DeliverymanRepository

	// RecipientRepository returns a RecipientRepository bound to the current
	// transaction started by Begin().
	RecipientRepository() RecipientRepository

	// ProblemRepository returns a ProblemRepository bound to the current
	// transaction started by Begin().
	ProblemRepository() ProblemRepository

	// FileRepository returns a FileRepository bound to the current
	// transaction started by Begin().
	FileRepository() FileRepository
}
