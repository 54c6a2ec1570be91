package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/pkg/errs"
)

// UpdateRecipientCommandHandler handles recipient updates.
// A name change re-checks uniqueness; keeping the current name is allowed.
type UpdateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewUpdateRecipientCommandHandler creates a handler for recipient updates.
func NewUpdateRecipientCommandHandler(uowFactory RecipientUoWFactory) UpdateRecipientCommandHandler {
	return UpdateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient update command.
func (h *UpdateRecipientCommandHandler) Handle(ctx context.Context, cmd UpdateRecipientCommand) error {
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

	if cmd.Name() != aggregate.Name() {
		if _, err = recipientRepo.GetByName(ctx, cmd.Name()); err == nil {
			return recipient.ErrDuplicateName
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = aggregate.Relocate(cmd.Address()); err != nil {
		return err
	}

	if err = recipientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
