package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateDeliverymanCommandIsNotConstructed = errors.New(
	"CreateDeliverymanCommand must be created via NewCreateDeliverymanCommand constructor",
)

// CreateDeliverymanCommand represents a request to register a new deliveryman.
type CreateDeliverymanCommand struct { //nolint:recvcheck //using for validation
	deliverymanID kernel.UUID
	name          string
	email         kernel.Email

	guard guard.ConstructorGuard
}

// NewCreateDeliverymanCommand creates a command to register a new deliveryman.
// Validates that the ID and email are constructed and the name is not empty.
func NewCreateDeliverymanCommand(deliverymanID kernel.UUID, name string, email kernel.Email) (CreateDeliverymanCommand, error) {
	cmd := CreateDeliverymanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliverymanID(deliverymanID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateDeliverymanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliverymanCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliverymanCommandIsNotConstructed)
}

// DeliverymanID returns the unique identifier for the deliveryman.
func (c CreateDeliverymanCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

// Name returns the deliveryman's name.
func (c CreateDeliverymanCommand) Name() string {
	return c.name
}

// Email returns the deliveryman's email address.
func (c CreateDeliverymanCommand) Email() kernel.Email {
	return c.email
}

func (c *CreateDeliverymanCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *CreateDeliverymanCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateDeliverymanCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}
