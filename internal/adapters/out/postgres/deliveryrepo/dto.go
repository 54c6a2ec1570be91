// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The lifecycle timestamps (start, end, cancellation, removal) are nullable;
// the delivery's status is derived from which of them are set.
type DeliveryDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Product       string     `gorm:"not null"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeliverymanID uuid.UUID  `gorm:"type:uuid;index;not null"`
	SignatureID   *uuid.UUID `gorm:"type:uuid"`
	StartDate     *time.Time `gorm:"index"`
	EndDate       *time.Time
	CanceledAt    *time.Time
	RemovedAt     *time.Time
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var signatureID *uuid.UUID
	if id := aggregate.SignatureID(); id != nil {
		raw := id.Bytes()
		signatureID = &raw
	}

	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		Product:       aggregate.Product(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		DeliverymanID: aggregate.DeliverymanID().Bytes(),
		SignatureID:   signatureID,
		StartDate:     aggregate.StartDate(),
		EndDate:       aggregate.EndDate(),
		CanceledAt:    aggregate.CanceledAt(),
		RemovedAt:     aggregate.RemovedAt(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	deliverymanID, err := kernel.UUIDFromBytes(dto.DeliverymanID[:])
	if err != nil {
		return nil, err
	}

	var signatureID *kernel.UUID
	if dto.SignatureID != nil {
		sID, sigErr := kernel.UUIDFromBytes((*dto.SignatureID)[:])
		if sigErr != nil {
			return nil, sigErr
		}

		signatureID = &sID
	}

	return delivery.RestoreDelivery(
		id, recipientID, deliverymanID, dto.Product, signatureID,
		dto.StartDate, dto.EndDate, dto.CanceledAt, dto.RemovedAt, dto.CreatedAt,
	)
}
