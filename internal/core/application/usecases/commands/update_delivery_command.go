package commands

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand represents an administrative partial update of a
// delivery. Every field except the delivery ID is optional: nil leaves the
// current value untouched. A given start date must still fall in the pickup
// window, and a given signature must reference an uploaded file, but the
// administrative path skips the daily withdrawal limit.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	product       *string
	recipientID   *kernel.UUID
	deliverymanID *kernel.UUID
	signatureID   *kernel.UUID
	startDate     *time.Time
	endDate       *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand creates a command to partially update a delivery.
func NewUpdateDeliveryCommand(deliveryID kernel.UUID, product *string,
	recipientID, deliverymanID, signatureID *kernel.UUID,
	startDate, endDate *time.Time) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setProduct(product),
		cmd.setRecipientID(recipientID),
		cmd.setDeliverymanID(deliverymanID),
		cmd.setSignatureID(signatureID),
	); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery to update.
func (c UpdateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Product returns the new product description, or nil to keep the current one.
func (c UpdateDeliveryCommand) Product() *string {
	return c.product
}

// RecipientID returns the new recipient, or nil to keep the current one.
func (c UpdateDeliveryCommand) RecipientID() *kernel.UUID {
	return c.recipientID
}

// DeliverymanID returns the new deliveryman, or nil to keep the current one.
func (c UpdateDeliveryCommand) DeliverymanID() *kernel.UUID {
	return c.deliverymanID
}

// SignatureID returns the new signature file, or nil to keep the current one.
func (c UpdateDeliveryCommand) SignatureID() *kernel.UUID {
	return c.signatureID
}

// StartDate returns the new pickup timestamp, or nil to keep the current one.
func (c UpdateDeliveryCommand) StartDate() *time.Time {
	return c.startDate
}

// EndDate returns the new completion timestamp, or nil to keep the current one.
func (c UpdateDeliveryCommand) EndDate() *time.Time {
	return c.endDate
}

func (c *UpdateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryCommand) setProduct(product *string) error {
	if product == nil {
		return nil
	}
	if *product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}

func (c *UpdateDeliveryCommand) setRecipientID(recipientID *kernel.UUID) error {
	if recipientID == nil {
		return nil
	}
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *UpdateDeliveryCommand) setDeliverymanID(deliverymanID *kernel.UUID) error {
	if deliverymanID == nil {
		return nil
	}
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *UpdateDeliveryCommand) setSignatureID(signatureID *kernel.UUID) error {
	if signatureID == nil {
		return nil
	}
	if err := signatureID.Validate(); err != nil {
		return err
	}

	c.signatureID = signatureID
	return nil
}
