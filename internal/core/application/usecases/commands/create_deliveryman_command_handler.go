package commands

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/pkg/errs"
)

// CreateDeliverymanCommandHandler handles deliveryman registration.
// Enforces email uniqueness across the whole fleet, removed deliverymen
// included.
type CreateDeliverymanCommandHandler struct {
	uowFactory DeliverymanUoWFactory
}

// NewCreateDeliverymanCommandHandler creates a handler for deliveryman registration.
func NewCreateDeliverymanCommandHandler(uowFactory DeliverymanUoWFactory) CreateDeliverymanCommandHandler {
	return CreateDeliverymanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliveryman registration command.
// Rejects the registration with deliveryman.ErrDuplicateEmail when the email
// is already taken.
func (h *CreateDeliverymanCommandHandler) Handle(ctx context.Context, cmd CreateDeliverymanCommand) error {
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
	if _, err := deliverymanRepo.GetByEmail(ctx, cmd.Email()); err == nil {
		return deliveryman.ErrDuplicateEmail
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := deliveryman.NewDeliveryman(cmd.DeliverymanID(), cmd.Name(), cmd.Email(), time.Now())
	if err != nil {
		return err
	}

	if err = deliverymanRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
