package ports

import (
	"context"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/kernel"
)

// DeliverymanRepository defines the persistence contract for deliveryman
// aggregates.
type DeliverymanRepository interface {
	// Add persists a new deliveryman aggregate to storage.
	Add(ctx context.Context, aggregate *deliveryman.Deliveryman) error

	// Update persists changes to an existing deliveryman aggregate.
	Update(ctx context.Context, aggregate *deliveryman.Deliveryman) error

	// Get retrieves a deliveryman aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no deliveryman exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*deliveryman.Deliveryman, error)

	// GetByEmail retrieves a deliveryman by email address, including removed
	// ones. Used to enforce email uniqueness across the whole fleet.
	// Returns errs.ObjectNotFoundError when the email is not registered.
	GetByEmail(ctx context.Context, email kernel.Email) (*deliveryman.Deliveryman, error)
}
