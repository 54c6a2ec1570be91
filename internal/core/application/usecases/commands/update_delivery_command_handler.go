package commands

import (
	"context"

	"parcels/internal/pkg/errs"
)

// UpdateDeliveryCommandHandler handles administrative partial delivery
// updates. Reassignment targets must exist and not be removed; a new
// signature must reference an uploaded file.
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryCommandHandler creates a handler for delivery updates.
func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery update command.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) error {
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

	recipientID := aggregate.RecipientID()
	if cmd.RecipientID() != nil {
		recipient, getErr := uow.RecipientRepository().Get(ctx, *cmd.RecipientID())
		if getErr != nil {
			return getErr
		}
		if recipient.IsRemoved() {
			return errs.NewObjectNotFoundError("recipientID", *cmd.RecipientID())
		}
		recipientID = *cmd.RecipientID()
	}

	deliverymanID := aggregate.DeliverymanID()
	if cmd.DeliverymanID() != nil {
		deliveryman, getErr := uow.DeliverymanRepository().Get(ctx, *cmd.DeliverymanID())
		if getErr != nil {
			return getErr
		}
		if deliveryman.IsRemoved() {
			return errs.NewObjectNotFoundError("deliverymanID", *cmd.DeliverymanID())
		}
		deliverymanID = *cmd.DeliverymanID()
	}

	if err = aggregate.Reassign(recipientID, deliverymanID); err != nil {
		return err
	}

	if cmd.Product() != nil {
		if err = aggregate.ChangeProduct(*cmd.Product()); err != nil {
			return err
		}
	}

	if cmd.SignatureID() != nil {
		if _, err = uow.FileRepository().Get(ctx, *cmd.SignatureID()); err != nil {
			return err
		}
		if err = aggregate.AttachSignature(*cmd.SignatureID()); err != nil {
			return err
		}
	}

	if cmd.StartDate() != nil {
		if err = aggregate.RecordPickup(*cmd.StartDate()); err != nil {
			return err
		}
	}

	if cmd.EndDate() != nil {
		aggregate.RecordDelivered(*cmd.EndDate())
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
