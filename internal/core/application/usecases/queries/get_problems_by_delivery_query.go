package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetProblemsByDeliveryQueryIsNotConstructed = errors.New(
	"GetProblemsByDeliveryQuery must be created via NewGetProblemsByDeliveryQuery constructor",
)

// GetProblemsByDeliveryQuery retrieves the problems reported against one
// delivery.
type GetProblemsByDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProblemsByDeliveryQuery creates a query for one delivery's problems.
func NewGetProblemsByDeliveryQuery(deliveryID kernel.UUID) (GetProblemsByDeliveryQuery, error) {
	query := GetProblemsByDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return GetProblemsByDeliveryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProblemsByDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetProblemsByDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery.
func (q GetProblemsByDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *GetProblemsByDeliveryQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	q.deliveryID = deliveryID
	return nil
}
