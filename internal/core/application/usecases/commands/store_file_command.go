package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrStoreFileCommandIsNotConstructed = errors.New(
	"StoreFileCommand must be created via NewStoreFileCommand constructor",
)

// StoreFileCommand represents a request to record an uploaded file. The HTTP
// adapter has already written the contents to disk; the command persists the
// metadata.
type StoreFileCommand struct { //nolint:recvcheck //using for validation
	fileID     kernel.UUID
	name       string
	storedName string
	url        string

	guard guard.ConstructorGuard
}

// NewStoreFileCommand creates a command to record an uploaded file.
func NewStoreFileCommand(fileID kernel.UUID, name, storedName, url string) (StoreFileCommand, error) {
	cmd := StoreFileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFileID(fileID),
		cmd.setName(name),
		cmd.setStoredName(storedName),
		cmd.setURL(url),
	); err != nil {
		return StoreFileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StoreFileCommand) Validate() error {
	return c.guard.Validate(ErrStoreFileCommandIsNotConstructed)
}

// FileID returns the unique identifier for the stored file.
func (c StoreFileCommand) FileID() kernel.UUID {
	return c.fileID
}

// Name returns the original upload name.
func (c StoreFileCommand) Name() string {
	return c.name
}

// StoredName returns the unique on-disk name.
func (c StoreFileCommand) StoredName() string {
	return c.storedName
}

// URL returns the public URL the file is served from.
func (c StoreFileCommand) URL() string {
	return c.url
}

func (c *StoreFileCommand) setFileID(fileID kernel.UUID) error {
	if err := fileID.Validate(); err != nil {
		return err
	}

	c.fileID = fileID
	return nil
}

func (c *StoreFileCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *StoreFileCommand) setStoredName(storedName string) error {
	if storedName == "" {
		return errs.NewValueIsRequiredError("stored name")
	}

	c.storedName = storedName
	return nil
}

func (c *StoreFileCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	c.url = url
	return nil
}
