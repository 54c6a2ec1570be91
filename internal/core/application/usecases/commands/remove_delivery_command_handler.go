package commands

import (
	"context"
	"time"
)

// RemoveDeliveryCommandHandler soft-deletes deliveries.
// Only closed deliveries (canceled or delivered) can be removed.
type RemoveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRemoveDeliveryCommandHandler creates a handler for delivery removal.
func NewRemoveDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RemoveDeliveryCommandHandler {
	return RemoveDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery removal command.
func (h *RemoveDeliveryCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.Remove(time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
