package filerepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/file"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFileRepository implements FileRepository using GORM.
type GormFileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFileRepository creates a new GORM file repository.
func NewGormFileRepository(db *gorm.DB, tracker aggregateTracker) *GormFileRepository {
	return &GormFileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stored-file reference to the database.
func (r *GormFileRepository) Add(ctx context.Context, aggregate *file.StoredFile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a stored-file reference by ID.
func (r *GormFileRepository) Get(ctx context.Context, id kernel.UUID) (*file.StoredFile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("file", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
