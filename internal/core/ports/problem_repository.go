package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for delivery problems.
// Problems are append-only: they are never updated or removed.
type ProblemRepository interface {
	// Add persists a new problem report to storage.
	Add(ctx context.Context, aggregate *problem.DeliveryProblem) error

	// Get retrieves a problem report by its unique identifier.
	// Returns errs.ObjectNotFoundError when no problem exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*problem.DeliveryProblem, error)
}
