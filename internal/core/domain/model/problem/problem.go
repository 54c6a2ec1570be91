// Package problem provides the DeliveryProblem entity: a free-text issue
// reported against an existing delivery. A problem can later be used to cancel
// its delivery; the problem record itself is never removed by that action.
package problem

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrProblemIsNotConstructed is returned when a DeliveryProblem was not
	// created through NewDeliveryProblem or RestoreDeliveryProblem.
	ErrProblemIsNotConstructed = errors.New(
		"DeliveryProblem must be created via NewDeliveryProblem or RestoreDeliveryProblem")
)

// DeliveryProblem records an issue reported against a delivery.
type DeliveryProblem struct {
	id          kernel.UUID
	deliveryID  kernel.UUID
	description string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryProblem creates a problem report. The caller verifies that the
// referenced delivery exists before registering the problem.
func NewDeliveryProblem(id, deliveryID kernel.UUID, description string, createdAt time.Time) (*DeliveryProblem, error) {
	p := &DeliveryProblem{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeliveryID(deliveryID),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryProblem reconstructs a problem from persistence.
func RestoreDeliveryProblem(id, deliveryID kernel.UUID, description string, createdAt time.Time) (*DeliveryProblem, error) {
	return NewDeliveryProblem(id, deliveryID, description, createdAt)
}

// Validate ensures the problem was created through a constructor.
func (p *DeliveryProblem) Validate() error {
	if p == nil {
		return ErrProblemIsNotConstructed
	}
	return p.guard.Validate(ErrProblemIsNotConstructed)
}

// ID returns the problem's unique identifier.
func (p *DeliveryProblem) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the identifier of the delivery the problem was reported
// against.
func (p *DeliveryProblem) DeliveryID() kernel.UUID {
	return p.deliveryID
}

// Description returns the reported problem description.
func (p *DeliveryProblem) Description() string {
	return p.description
}

// CreatedAt returns the report timestamp.
func (p *DeliveryProblem) CreatedAt() time.Time {
	return p.createdAt
}

func (p *DeliveryProblem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryProblem) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.deliveryID = id
	return nil
}

func (p *DeliveryProblem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}
