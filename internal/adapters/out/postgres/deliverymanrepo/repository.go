package deliverymanrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliverymanRepository implements DeliverymanRepository using GORM.
type GormDeliverymanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliverymanRepository creates a new GORM deliveryman repository.
func NewGormDeliverymanRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliverymanRepository {
	return &GormDeliverymanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new deliveryman to the database.
func (r *GormDeliverymanRepository) Add(ctx context.Context, aggregate *deliveryman.Deliveryman) error {
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

// Update saves an existing deliveryman to the database.
func (r *GormDeliverymanRepository) Update(ctx context.Context, aggregate *deliveryman.Deliveryman) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliverymanDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a deliveryman by ID.
func (r *GormDeliverymanRepository) Get(ctx context.Context, id kernel.UUID) (*deliveryman.Deliveryman, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliverymanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryman", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a deliveryman by email address. Removed deliverymen are
// included: a retired account still holds its address.
func (r *GormDeliverymanRepository) GetByEmail(
	ctx context.Context,
	email kernel.Email,
) (*deliveryman.Deliveryman, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto DeliverymanDTO
	err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryman", email.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
