package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateDeliverymanCommandIsNotConstructed = errors.New(
	"UpdateDeliverymanCommand must be created via NewUpdateDeliverymanCommand constructor",
)

// UpdateDeliverymanCommand represents a request to change a deliveryman's
// name, email and/or avatar. AvatarID is optional: nil leaves the current
// avatar untouched.
type UpdateDeliverymanCommand struct { //nolint:recvcheck //using for validation
	deliverymanID kernel.UUID
	name          string
	email         kernel.Email
	avatarID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDeliverymanCommand creates a command to update an existing deliveryman.
func NewUpdateDeliverymanCommand(deliverymanID kernel.UUID, name string,
	email kernel.Email, avatarID *kernel.UUID) (UpdateDeliverymanCommand, error) {
	cmd := UpdateDeliverymanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliverymanID(deliverymanID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setAvatarID(avatarID),
	); err != nil {
		return UpdateDeliverymanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliverymanCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliverymanCommandIsNotConstructed)
}

// DeliverymanID returns the identifier of the deliveryman to update.
func (c UpdateDeliverymanCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

// Name returns the new deliveryman name.
func (c UpdateDeliverymanCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdateDeliverymanCommand) Email() kernel.Email {
	return c.email
}

// AvatarID returns the identifier of the new avatar file, or nil when the
// avatar is not being changed.
func (c UpdateDeliverymanCommand) AvatarID() *kernel.UUID {
	return c.avatarID
}

func (c *UpdateDeliverymanCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *UpdateDeliverymanCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateDeliverymanCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *UpdateDeliverymanCommand) setAvatarID(avatarID *kernel.UUID) error {
	if avatarID == nil {
		return nil
	}
	if err := avatarID.Validate(); err != nil {
		return err
	}

	c.avatarID = avatarID
	return nil
}
