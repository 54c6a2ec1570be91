package commands

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/pkg/errs"
)

// UpdateDeliverymanCommandHandler handles deliveryman updates.
// An email change re-checks uniqueness; keeping the current email is allowed.
// A new avatar must reference an uploaded file.
type UpdateDeliverymanCommandHandler struct {
	uowFactory DeliverymanUoWFactory
}

// NewUpdateDeliverymanCommandHandler creates a handler for deliveryman updates.
func NewUpdateDeliverymanCommandHandler(uowFactory DeliverymanUoWFactory) UpdateDeliverymanCommandHandler {
	return UpdateDeliverymanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliveryman update command.
func (h *UpdateDeliverymanCommandHandler) Handle(ctx context.Context, cmd UpdateDeliverymanCommand) error {
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

	if !cmd.Email().IsEqual(aggregate.Email()) {
		if _, err = deliverymanRepo.GetByEmail(ctx, cmd.Email()); err == nil {
			return deliveryman.ErrDuplicateEmail
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = aggregate.ChangeEmail(cmd.Email()); err != nil {
		return err
	}

	if avatarID := cmd.AvatarID(); avatarID != nil {
		if _, err = uow.FileRepository().Get(ctx, *avatarID); err != nil {
			return err
		}
		if err = aggregate.SetAvatar(*avatarID); err != nil {
			return err
		}
	}

	if err = deliverymanRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
