package commands

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a deliveryman's request to close a
// delivery at the given end date with the recipient's signature.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	deliverymanID kernel.UUID
	signatureID   kernel.UUID
	endDate       time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(deliveryID, deliverymanID, signatureID kernel.UUID,
	endDate time.Time) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDeliverymanID(deliverymanID),
		cmd.setSignatureID(signatureID),
		cmd.setEndDate(endDate),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to complete.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DeliverymanID returns the identifier of the completing deliveryman.
func (c CompleteDeliveryCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

// SignatureID returns the identifier of the uploaded signature file.
func (c CompleteDeliveryCommand) SignatureID() kernel.UUID {
	return c.signatureID
}

// EndDate returns the completion timestamp.
func (c CompleteDeliveryCommand) EndDate() time.Time {
	return c.endDate
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CompleteDeliveryCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *CompleteDeliveryCommand) setSignatureID(signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return err
	}

	c.signatureID = signatureID
	return nil
}

func (c *CompleteDeliveryCommand) setEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredError("end date")
	}

	c.endDate = endDate
	return nil
}
