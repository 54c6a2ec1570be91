package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
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

// Update saves an existing delivery to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountWithdrawnOnDay counts the deliveryman's withdrawals on the calendar day
// containing the given instant. Canceled and removed deliveries still count:
// the slot was consumed when the package left the warehouse.
func (r *GormDeliveryRepository) CountWithdrawnOnDay(
	ctx context.Context,
	deliverymanID kernel.UUID,
	day time.Time,
) (int, error) {
	if err := deliverymanID.Validate(); err != nil {
		return 0, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("deliveryman_id = ? AND start_date >= ? AND start_date < ?",
			deliverymanID.Bytes(), dayStart, dayEnd).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// HasOpenForDeliveryman reports whether the deliveryman still has deliveries
// that are neither canceled nor completed.
func (r *GormDeliveryRepository) HasOpenForDeliveryman(
	ctx context.Context,
	deliverymanID kernel.UUID,
) (bool, error) {
	if err := deliverymanID.Validate(); err != nil {
		return false, err
	}

	return r.hasOpen(ctx, "deliveryman_id = ?", deliverymanID)
}

// HasOpenForRecipient reports whether the recipient still has deliveries
// that are neither canceled nor completed.
func (r *GormDeliveryRepository) HasOpenForRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
) (bool, error) {
	if err := recipientID.Validate(); err != nil {
		return false, err
	}

	return r.hasOpen(ctx, "recipient_id = ?", recipientID)
}

func (r *GormDeliveryRepository) hasOpen(ctx context.Context, ownerFilter string, ownerID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where(ownerFilter, ownerID.Bytes()).
		Where("canceled_at IS NULL AND end_date IS NULL AND removed_at IS NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
