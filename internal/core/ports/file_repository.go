package ports

import (
	"context"

	"parcels/internal/core/domain/model/file"
	"parcels/internal/core/domain/model/kernel"
)

// FileRepository defines the persistence contract for stored-file references.
// The file contents live on disk; the repository keeps only the metadata.
type FileRepository interface {
	// Add persists a new stored-file reference.
	Add(ctx context.Context, aggregate *file.StoredFile) error

	// Get retrieves a stored-file reference by its unique identifier.
	// Returns errs.ObjectNotFoundError when no file exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*file.StoredFile, error)
}
