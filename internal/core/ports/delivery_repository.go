package ports

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries by their
// lifecycle state and assignment.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no delivery exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// CountWithdrawnOnDay counts deliveries the deliveryman withdrew on the
	// calendar day that contains the given instant. Used to enforce the daily
	// withdrawal limit.
	CountWithdrawnOnDay(ctx context.Context, deliverymanID kernel.UUID, day time.Time) (int, error)

	// HasOpenForDeliveryman reports whether the deliveryman has at least one
	// delivery that is neither canceled nor completed.
	HasOpenForDeliveryman(ctx context.Context, deliverymanID kernel.UUID) (bool, error)

	// HasOpenForRecipient reports whether the recipient has at least one
	// delivery that is neither canceled nor completed.
	HasOpenForRecipient(ctx context.Context, recipientID kernel.UUID) (bool, error)
}
