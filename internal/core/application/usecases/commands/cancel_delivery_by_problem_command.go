package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCancelDeliveryByProblemCommandIsNotConstructed = errors.New(
	"CancelDeliveryByProblemCommand must be created via NewCancelDeliveryByProblemCommand constructor",
)

// CancelDeliveryByProblemCommand represents an administrative request to
// cancel the delivery a problem was reported against.
type CancelDeliveryByProblemCommand struct { //nolint:recvcheck //using for validation
	problemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryByProblemCommand creates a command to cancel a delivery
// over a reported problem.
func NewCancelDeliveryByProblemCommand(problemID kernel.UUID) (CancelDeliveryByProblemCommand, error) {
	cmd := CancelDeliveryByProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProblemID(problemID); err != nil {
		return CancelDeliveryByProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryByProblemCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryByProblemCommandIsNotConstructed)
}

// ProblemID returns the identifier of the problem justifying the cancellation.
func (c CancelDeliveryByProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

func (c *CancelDeliveryByProblemCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}

	c.problemID = problemID
	return nil
}
