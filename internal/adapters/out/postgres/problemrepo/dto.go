// Package problemrepo provides data transfer objects and mapping functions for
// delivery problem persistence. Problem reports are append-only rows.
package problemrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/problem"

	"github.com/google/uuid"
)

// ProblemDTO represents the database structure for persisting problem reports.
type ProblemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for problem entities.
func (ProblemDTO) TableName() string {
	return "delivery_problems"
}

// fromDomain converts a problem report to its database representation.
func fromDomain(aggregate *problem.DeliveryProblem) ProblemDTO {
	return ProblemDTO{
		ID:          aggregate.ID().Bytes(),
		DeliveryID:  aggregate.DeliveryID().Bytes(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a problem report.
func toDomain(dto ProblemDTO) (*problem.DeliveryProblem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	return problem.RestoreDeliveryProblem(id, deliveryID, dto.Description, dto.CreatedAt)
}
