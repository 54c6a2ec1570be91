package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrRegisterProblemCommandIsNotConstructed = errors.New(
	"RegisterProblemCommand must be created via NewRegisterProblemCommand constructor",
)

// RegisterProblemCommand represents a deliveryman's report of a problem with
// a delivery.
type RegisterProblemCommand struct { //nolint:recvcheck //using for validation
	problemID   kernel.UUID
	deliveryID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewRegisterProblemCommand creates a command to report a delivery problem.
func NewRegisterProblemCommand(problemID, deliveryID kernel.UUID, description string) (RegisterProblemCommand, error) {
	cmd := RegisterProblemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProblemID(problemID),
		cmd.setDeliveryID(deliveryID),
		cmd.setDescription(description),
	); err != nil {
		return RegisterProblemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterProblemCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProblemCommandIsNotConstructed)
}

// ProblemID returns the unique identifier for the problem report.
func (c RegisterProblemCommand) ProblemID() kernel.UUID {
	return c.problemID
}

// DeliveryID returns the identifier of the delivery the problem concerns.
func (c RegisterProblemCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Description returns the reported problem description.
func (c RegisterProblemCommand) Description() string {
	return c.description
}

func (c *RegisterProblemCommand) setProblemID(problemID kernel.UUID) error {
	if err := problemID.Validate(); err != nil {
		return err
	}

	c.problemID = problemID
	return nil
}

func (c *RegisterProblemCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RegisterProblemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
