package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery,
// assigning a product to a recipient and a deliveryman.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(deliveryID, recipientID, deliverymanID, "Mechanical keyboard")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, trigger, queue, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
//	// The assigned deliveryman is notified by mail in the background.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	recipientID   kernel.UUID
	deliverymanID kernel.UUID
	product       string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
func NewCreateDeliveryCommand(deliveryID, recipientID, deliverymanID kernel.UUID,
	product string) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setRecipientID(recipientID),
		cmd.setDeliverymanID(deliverymanID),
		cmd.setProduct(product),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// RecipientID returns the identifier of the receiving recipient.
func (c CreateDeliveryCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// DeliverymanID returns the identifier of the assigned deliveryman.
func (c CreateDeliveryCommand) DeliverymanID() kernel.UUID {
	return c.deliverymanID
}

// Product returns the product description.
func (c CreateDeliveryCommand) Product() string {
	return c.product
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	c.recipientID = recipientID
	return nil
}

func (c *CreateDeliveryCommand) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	c.deliverymanID = deliverymanID
	return nil
}

func (c *CreateDeliveryCommand) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	c.product = product
	return nil
}
