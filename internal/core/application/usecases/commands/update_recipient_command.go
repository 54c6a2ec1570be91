package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateRecipientCommandIsNotConstructed = errors.New(
	"UpdateRecipientCommand must be created via NewUpdateRecipientCommand constructor",
)

// UpdateRecipientCommand represents a request to change a recipient's name
// and/or address. All fields are required; the HTTP adapter fills untouched
// fields from the current state.
type UpdateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	address     kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdateRecipientCommand creates a command to update an existing recipient.
func NewUpdateRecipientCommand(recipientID kernel.UUID, name string, address kernel.Address) (UpdateRecipientCommand, error) {
	cmd := UpdateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return UpdateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier of the recipient to update.
func (c UpdateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the new recipient name.
func (c UpdateRecipientCommand) Name() string {
	return c.name
}

// Address returns the new delivery address.
func (c UpdateRecipientCommand) Address() kernel.Address {
	return c.address
}

func (c *UpdateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *UpdateRecipientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateRecipientCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
