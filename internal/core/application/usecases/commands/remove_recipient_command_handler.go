package commands

import (
	"context"
	"time"
)

// RemoveRecipientCommandHandler soft-deletes recipients.
// Removal is blocked while the recipient still has an open delivery.
type RemoveRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewRemoveRecipientCommandHandler creates a handler for recipient removal.
func NewRemoveRecipientCommandHandler(uowFactory RecipientUoWFactory) RemoveRecipientCommandHandler {
	return RemoveRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient removal command.
func (h *RemoveRecipientCommandHandler) Handle(ctx context.Context, cmd RemoveRecipientCommand) error {
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

	recipientRepo := uow.RecipientRepository()
	aggregate, err := recipientRepo.Get(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	hasOpen, err := uow.DeliveryRepository().HasOpenForRecipient(ctx, cmd.RecipientID())
	if err != nil {
		return err
	}

	if err = aggregate.Remove(time.Now(), hasOpen); err != nil {
		return err
	}

	if err = recipientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
