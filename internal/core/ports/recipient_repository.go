package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipient
// aggregates.
type RecipientRepository interface {
	// Add persists a new recipient aggregate to storage.
	Add(ctx context.Context, aggregate *recipient.Recipient) error

	// Update persists changes to an existing recipient aggregate.
	Update(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no recipient exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)

	// GetByName retrieves an active (non-removed) recipient by exact name.
	// Used to enforce name uniqueness.
	// Returns errs.ObjectNotFoundError when the name is not registered.
	GetByName(ctx context.Context, name string) (*recipient.Recipient, error)
}
