// Package recipientrepo provides data transfer objects and mapping functions for recipient persistence.
package recipientrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO represents the database structure for persisting recipient aggregates.
// The postal address is flattened into the recipients table. Name uniqueness is
// enforced by the application against active rows only, so the column carries a
// plain index rather than a unique constraint.
type RecipientDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"index;not null"`
	Street     string    `gorm:"not null"`
	Number     int       `gorm:"not null"`
	Complement string
	City       string `gorm:"not null"`
	State      string `gorm:"not null"`
	ZipCode    string `gorm:"not null"`
	RemovedAt  *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// fromDomain converts a recipient domain aggregate to its database representation.
func fromDomain(aggregate *recipient.Recipient) RecipientDTO {
	addr := aggregate.Address()

	return RecipientDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Street:     addr.Street(),
		Number:     addr.Number(),
		Complement: addr.Complement(),
		City:       addr.City(),
		State:      addr.State(),
		ZipCode:    addr.ZipCode(),
		RemovedAt:  aggregate.RemovedAt(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a recipient domain aggregate.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(dto.Street, dto.Number, dto.Complement, dto.City, dto.State, dto.ZipCode)
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(id, dto.Name, addr, dto.RemovedAt, dto.CreatedAt)
}
