package recipientrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements RecipientRepository using GORM.
type GormRecipientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipientRepository {
	return &GormRecipientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recipient to the database.
func (r *GormRecipientRepository) Add(ctx context.Context, aggregate *recipient.Recipient) error {
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

// Update saves an existing recipient to the database.
func (r *GormRecipientRepository) Update(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RecipientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a recipient by ID.
func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves an active recipient by exact name. Removed recipients do
// not participate in the uniqueness check, so they are filtered out here.
func (r *GormRecipientRepository) GetByName(ctx context.Context, name string) (*recipient.Recipient, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto RecipientDTO
	err := r.db.WithContext(ctx).First(&dto, "name = ? AND removed_at IS NULL", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
