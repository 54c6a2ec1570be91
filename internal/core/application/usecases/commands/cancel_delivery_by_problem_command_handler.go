package commands

import (
	"context"
	"log/slog"
	"time"

	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
)

// CancelDeliveryByProblemCommandHandler cancels a delivery over a reported
// problem. Unlike the administrative cancel, this path only rejects
// deliveries that were already canceled. After the transaction commits, a
// "delivery canceled" notification carrying the problem description is
// enqueued for the assigned deliveryman; an enqueue failure never fails the
// command, it is only logged.
type CancelDeliveryByProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
	trigger    services.NotificationTrigger
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

// NewCancelDeliveryByProblemCommandHandler creates a handler for
// problem-based cancellation.
func NewCancelDeliveryByProblemCommandHandler(uowFactory ProblemUoWFactory,
	trigger services.NotificationTrigger, queue ports.NotificationQueue,
	logger *slog.Logger) CancelDeliveryByProblemCommandHandler {
	return CancelDeliveryByProblemCommandHandler{
		uowFactory: uowFactory,
		trigger:    trigger,
		queue:      queue,
		logger:     logger.With("component", "cancel_delivery_by_problem"),
	}
}

// Handle processes the problem-based cancellation command.
func (h *CancelDeliveryByProblemCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryByProblemCommand) error {
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

	problem, err := uow.ProblemRepository().Get(ctx, cmd.ProblemID())
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, problem.DeliveryID())
	if err != nil {
		return err
	}

	deliveryman, err := uow.DeliverymanRepository().Get(ctx, aggregate.DeliverymanID())
	if err != nil {
		return err
	}
	recipient, err := uow.RecipientRepository().Get(ctx, aggregate.RecipientID())
	if err != nil {
		return err
	}

	if err = aggregate.CancelOnProblem(time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notice, err := h.trigger.DeliveryCanceledNotice(aggregate, deliveryman, recipient, problem)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build delivery canceled notice",
			"delivery_id", aggregate.ID().String(), "error", err)
		return nil
	}

	if err = h.queue.Enqueue(ctx, services.JobDeliveryCanceledMail, notice); err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue delivery canceled notification",
			"delivery_id", aggregate.ID().String(), "error", err)
	}

	return nil
}
