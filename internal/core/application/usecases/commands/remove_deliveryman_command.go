package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrRemoveDeliverymanCommandIsNotConstructed = errors.New(
	"RemoveDeliverymanCommand must be created via NewRemoveDeliverymanCommand constructor",
)

// RemoveDeliverymanCommand represents a request to soft-delete a deliveryman.
type RemoveDeliverymanCommand struct { //nolint:recvcheck //using for validation
	deliverymanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDeliverymanCommand creates a command to soft-delete a deliveryman.
func NewRemoveDeliverymanCommand(deliverymanID kernel.UUID) (RemoveDeliverymanCommand, error) {
	cmd := RemoveDeliverymanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliverymanID(deliverymanID); err != nil {
		return RemoveDeliverymanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliverymanCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliverymanCommandIsNotConstructed)
}

// DeliverymanID returns the identifier of the deliveryman to remove.
func (c RemoveDeliverymanCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

func (c *RemoveDeliverymanCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}
