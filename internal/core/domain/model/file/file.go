// Package file provides the StoredFile entity: an uploaded file (deliveryman
// avatar or delivery signature) persisted on disk and referenced by its owner.
package file

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrFileIsNotConstructed is returned when a StoredFile was not created
	// through NewStoredFile or RestoreStoredFile.
	ErrFileIsNotConstructed = errors.New(
		"StoredFile must be created via NewStoredFile or RestoreStoredFile")
)

// StoredFile references an uploaded file: the original name the client sent,
// the unique name it is stored under, and the public URL it is served from.
type StoredFile struct {
	id         kernel.UUID
	name       string
	storedName string
	url        string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewStoredFile creates a stored-file reference.
func NewStoredFile(id kernel.UUID, name, storedName, url string, createdAt time.Time) (*StoredFile, error) {
	f := &StoredFile{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setStoredName(storedName),
		f.setURL(url),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreStoredFile reconstructs a stored-file reference from persistence.
func RestoreStoredFile(id kernel.UUID, name, storedName, url string, createdAt time.Time) (*StoredFile, error) {
	return NewStoredFile(id, name, storedName, url, createdAt)
}

// Validate ensures the file was created through a constructor.
func (f *StoredFile) Validate() error {
	if f == nil {
		return ErrFileIsNotConstructed
	}
	return f.guard.Validate(ErrFileIsNotConstructed)
}

// ID returns the file's unique identifier.
func (f *StoredFile) ID() kernel.UUID {
	return f.id
}

// Name returns the original upload name.
func (f *StoredFile) Name() string {
	return f.name
}

// StoredName returns the unique on-disk name.
func (f *StoredFile) StoredName() string {
	return f.storedName
}

// URL returns the public URL the file is served from.
func (f *StoredFile) URL() string {
	return f.url
}

// CreatedAt returns the upload timestamp.
func (f *StoredFile) CreatedAt() time.Time {
	return f.createdAt
}

func (f *StoredFile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *StoredFile) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	f.name = name
	return nil
}

func (f *StoredFile) setStoredName(storedName string) error {
	if storedName == "" {
		return errs.NewValueIsRequiredError("stored name")
	}
	f.storedName = storedName
	return nil
}

func (f *StoredFile) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	f.url = url
	return nil
}
