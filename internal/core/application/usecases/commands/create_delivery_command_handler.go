package commands

import (
	"context"
	"log/slog"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles delivery registration.
// Both the recipient and the deliveryman must exist and not be removed.
// After the transaction commits, a "new delivery" notification is enqueued
// for the assigned deliveryman; an enqueue failure never fails the command,
// it is only logged.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	trigger    services.NotificationTrigger
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory,
	trigger services.NotificationTrigger, queue ports.NotificationQueue,
	logger *slog.Logger) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		trigger:    trigger,
		queue:      queue,
		logger:     logger.With("component", "create_delivery"),
	}
}

// Handle processes the delivery registration command.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}
	if recipient.IsRemoved() {
		return errs.NewObjectNotFoundError("recipientID", cmd.RecipientID())
	}

	deliveryman, err := uow.DeliverymanRepository().Get(ctx, cmd.DeliverymanID())
	if err != nil {
		return err
	}
	if deliveryman.IsRemoved() {
		return errs.NewObjectNotFoundError("deliverymanID", cmd.DeliverymanID())
	}

	aggregate, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.RecipientID(),
		cmd.DeliverymanID(), cmd.Product(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notice, err := h.trigger.NewDeliveryNotice(aggregate, deliveryman, recipient)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build new delivery notice",
			"delivery_id", aggregate.ID().String(), "error", err)
		return nil
	}

	if err = h.queue.Enqueue(ctx, services.JobNewDeliveryMail, notice); err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue new delivery notification",
			"delivery_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
