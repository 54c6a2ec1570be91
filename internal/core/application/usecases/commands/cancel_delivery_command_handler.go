package commands

import (
	"context"
	"time"
)

// CancelDeliveryCommandHandler handles administrative delivery cancellation.
// A delivery can only be canceled while it is fully open: not yet canceled,
// picked up or delivered.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	if err = aggregate.Cancel(time.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
