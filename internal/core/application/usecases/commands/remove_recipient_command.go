package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrRemoveRecipientCommandIsNotConstructed = errors.New(
	"RemoveRecipientCommand must be created via NewRemoveRecipientCommand constructor",
)

// RemoveRecipientCommand represents a request to soft-delete a recipient.
type RemoveRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveRecipientCommand creates a command to soft-delete a recipient.
func NewRemoveRecipientCommand(recipientID kernel.UUID) (RemoveRecipientCommand, error) {
	cmd := RemoveRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRecipientID(recipientID); err != nil {
		return RemoveRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRecipientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier of the recipient to remove.
func (c RemoveRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *RemoveRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}
