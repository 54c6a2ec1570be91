package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrRemoveDeliveryCommandIsNotConstructed = errors.New(
	"RemoveDeliveryCommand must be created via NewRemoveDeliveryCommand constructor",
)

// RemoveDeliveryCommand represents a request to soft-delete a closed delivery.
type RemoveDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDeliveryCommand creates a command to soft-delete a delivery.
func NewRemoveDeliveryCommand(deliveryID kernel.UUID) (RemoveDeliveryCommand, error) {
	cmd := RemoveDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return RemoveDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to remove.
func (c RemoveDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *RemoveDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
