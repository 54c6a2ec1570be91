package commands

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/pkg/errs"
)

// CreateRecipientCommandHandler handles the business logic for recipient
// registration. Enforces name uniqueness among active recipients; a removed
// recipient frees its name for reuse.
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient registration.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipient registration command.
// Rejects the registration with recipient.ErrDuplicateName when the name is
// already taken.
func (h *CreateRecipientCommandHandler) Handle(ctx context.Context, cmd CreateRecipientCommand) error {
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
	if _, err := recipientRepo.GetByName(ctx, cmd.Name()); err == nil {
		return recipient.ErrDuplicateName
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := recipient.NewRecipient(cmd.RecipientID(), cmd.Name(), cmd.Address(), time.Now())
	if err != nil {
		return err
	}

	if err = recipientRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
