// Package deliverymanrepo provides data transfer objects and mapping functions for deliveryman persistence.
package deliverymanrepo

import (
	"time"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliverymanDTO represents the database structure for persisting deliveryman aggregates.
// Email uniqueness spans removed rows too, so the constraint lives in the database.
type DeliverymanDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"not null"`
	Email     string     `gorm:"uniqueIndex;not null"`
	AvatarID  *uuid.UUID `gorm:"type:uuid"`
	RemovedAt *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for deliveryman entities.
func (DeliverymanDTO) TableName() string {
	return "deliverymen"
}

// fromDomain converts a deliveryman domain aggregate to its database representation.
func fromDomain(aggregate *deliveryman.Deliveryman) DeliverymanDTO {
	var avatarID *uuid.UUID
	if id := aggregate.AvatarID(); id != nil {
		raw := id.Bytes()
		avatarID = &raw
	}

	return DeliverymanDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email().String(),
		AvatarID:  avatarID,
		RemovedAt: aggregate.RemovedAt(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a deliveryman domain aggregate.
func toDomain(dto DeliverymanDTO) (*deliveryman.Deliveryman, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var avatarID *kernel.UUID
	if dto.AvatarID != nil {
		aID, avatarErr := kernel.UUIDFromBytes((*dto.AvatarID)[:])
		if avatarErr != nil {
			return nil, avatarErr
		}

		avatarID = &aID
	}

	return deliveryman.RestoreDeliveryman(id, dto.Name, email, avatarID, dto.RemovedAt, dto.CreatedAt)
}
