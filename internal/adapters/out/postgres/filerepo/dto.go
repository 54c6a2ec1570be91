// Package filerepo provides data transfer objects and mapping functions for
// stored-file metadata persistence. File contents live on disk; only the
// metadata reaches the database.
package filerepo

import (
	"time"

	"parcels/internal/core/domain/model/file"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FileDTO represents the database structure for persisting stored-file references.
type FileDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	StoredName string    `gorm:"uniqueIndex;not null"`
	URL        string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for file entities.
func (FileDTO) TableName() string {
	return "files"
}

// fromDomain converts a stored-file reference to its database representation.
func fromDomain(aggregate *file.StoredFile) FileDTO {
	return FileDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		StoredName: aggregate.StoredName(),
		URL:        aggregate.URL(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a stored-file reference.
func toDomain(dto FileDTO) (*file.StoredFile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return file.RestoreStoredFile(id, dto.Name, dto.StoredName, dto.URL, dto.CreatedAt)
}
