package commands

import (
	"context"
	"errors"
)

// ErrNotDeliveryAssignee is returned when a deliveryman tries to act on a
// delivery assigned to someone else.
var ErrNotDeliveryAssignee = errors.New("delivery is assigned to another deliveryman")

// WithdrawDeliveryCommandHandler handles delivery withdrawal (pickup).
// Withdrawals are accepted between 08:00 and 18:00 and a deliveryman may
// withdraw at most five deliveries per calendar day. The same-day count is
// taken before the write, so a re-submission of the same delivery counts
// against its own limit.
type WithdrawDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewWithdrawDeliveryCommandHandler creates a handler for delivery withdrawal.
func NewWithdrawDeliveryCommandHandler(uowFactory DeliveryUoWFactory) WithdrawDeliveryCommandHandler {
	return WithdrawDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command.
func (h *WithdrawDeliveryCommandHandler) Handle(ctx context.Context, cmd WithdrawDeliveryCommand) error {
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

	sameDay, err := deliveryRepo.CountWithdrawnOnDay(ctx, cmd.DeliverymanID(), cmd.StartDate())
	if err != nil {
		return err
	}

	if err = aggregate.Withdraw(cmd.StartDate(), sameDay); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
