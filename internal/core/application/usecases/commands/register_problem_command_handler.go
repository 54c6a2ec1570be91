package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/problem"
)

// RegisterProblemCommandHandler handles delivery problem reports.
// The referenced delivery must exist; the report itself is append-only.
type RegisterProblemCommandHandler struct {
	uowFactory ProblemUoWFactory
}

// NewRegisterProblemCommandHandler creates a handler for problem reports.
func NewRegisterProblemCommandHandler(uowFactory ProblemUoWFactory) RegisterProblemCommandHandler {
	return RegisterProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the problem report command.
func (h *RegisterProblemCommandHandler) Handle(ctx context.Context, cmd RegisterProblemCommand) error {
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

	if _, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	aggregate, err := problem.NewDeliveryProblem(cmd.ProblemID(), cmd.DeliveryID(),
		cmd.Description(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.ProblemRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
