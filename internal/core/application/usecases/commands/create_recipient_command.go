package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateRecipientCommandIsNotConstructed = errors.New(
	"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
)

// CreateRecipientCommand represents a request to register a new recipient.
// Encapsulates the recipient's name and delivery address.
//
// Example:
//
//	recipientID := kernel.NewUUID()
//	addr, _ := kernel.NewAddress("Main Street", 10, "", "Springfield", "SP", "12345")
//	cmd, err := NewCreateRecipientCommand(recipientID, "Jane Doe", addr)
//	if err != nil {
//	    return fmt.Errorf("invalid recipient data: %w", err)
//	}
//
//	handler := NewCreateRecipientCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create recipient: %w", err)
//	}
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	address     kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateRecipientCommand creates a command to register a new recipient.
// Validates that the recipient ID and address are constructed and the name is
// not empty.
func NewCreateRecipientCommand(recipientID kernel.UUID, name string, address kernel.Address) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// RecipientID returns the unique identifier for the recipient.
func (c CreateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the recipient's name.
func (c CreateRecipientCommand) Name() string {
	return c.name
}

// Address returns the recipient's delivery address.
func (c CreateRecipientCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateRecipientCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateRecipientCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
