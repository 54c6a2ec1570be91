package commands

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrWithdrawDeliveryCommandIsNotConstructed = errors.New(
	"WithdrawDeliveryCommand must be created via NewWithdrawDeliveryCommand constructor",
)

// WithdrawDeliveryCommand represents a deliveryman's request to pick up a
// delivery for transport at the given start date.
type WithdrawDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	deliverymanID kernel.UUID
	startDate     time.Time

	guard guard.ConstructorGuard
}

// NewWithdrawDeliveryCommand creates a command to withdraw a delivery.
func NewWithdrawDeliveryCommand(deliveryID, deliverymanID kernel.UUID, startDate time.Time) (WithdrawDeliveryCommand, error) {
	cmd := WithdrawDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDeliverymanID(deliverymanID),
		cmd.setStartDate(startDate),
	); err != nil {
		return WithdrawDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to withdraw.
func (c WithdrawDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DeliverymanID returns the identifier of the withdrawing deliveryman.
func (c WithdrawDeliveryCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

// StartDate returns the requested pickup timestamp.
func (c WithdrawDeliveryCommand) StartDate() time.Time {
	return c.startDate
}

func (c *WithdrawDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *WithdrawDeliveryCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *WithdrawDeliveryCommand) setStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}

	c.startDate = startDate
	return nil
}
