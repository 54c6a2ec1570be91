package commands

import (
	"context"
	"time"
)

// RemoveDeliverymanCommandHandler soft-deletes deliverymen.
// Removal is blocked while the deliveryman still has an open delivery.
type RemoveDeliverymanCommandHandler struct {
	uowFactory DeliverymanUoWFactory
}

// NewRemoveDeliverymanCommandHandler creates a handler for deliveryman removal.
func NewRemoveDeliverymanCommandHandler(uowFactory DeliverymanUoWFactory) RemoveDeliverymanCommandHandler {
	return RemoveDeliverymanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliveryman removal command.
func (h *RemoveDeliverymanCommandHandler) Handle(ctx context.Context, cmd RemoveDeliverymanCommand) error {
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

	deliverymanRepo := uow.DeliverymanRepository()
	aggregate, err := deliverymanRepo.Get(ctx, cmd.DeliverymanID())
	if err != nil {
		return err
	}

	hasOpen, err := uow.DeliveryRepository().HasOpenForDeliveryman(ctx, cmd.DeliverymanID())
	if err != nil {
		return err
	}

	if err = aggregate.Remove(time.Now(), hasOpen); err != nil {
		return err
	}

	if err = deliverymanRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
