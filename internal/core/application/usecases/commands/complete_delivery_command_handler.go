package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler handles delivery completion.
// The signature must reference an uploaded file and the delivery must have
// been withdrawn by the same deliveryman.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if !aggregate.DeliverymanID().IsEqual(cmd.DeliverymanID()) {
		return ErrNotDeliveryAssignee
	}

	if _, err = uow.FileRepository().Get(ctx, cmd.SignatureID()); err != nil {
		return err
	}

	if err = aggregate.Complete(cmd.EndDate(), cmd.SignatureID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
