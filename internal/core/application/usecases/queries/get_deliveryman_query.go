package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetDeliverymanQueryIsNotConstructed = errors.New(
	"GetDeliverymanQuery must be created via NewGetDeliverymanQuery constructor",
)

// GetDeliverymanQuery retrieves a single active deliveryman by identifier.
type GetDeliverymanQuery struct { //nolint:recvcheck //using for validation
	deliverymanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliverymanQuery creates a query to retrieve one deliveryman.
func NewGetDeliverymanQuery(deliverymanID kernel.UUID) (GetDeliverymanQuery, error) {
	query := GetDeliverymanQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliverymanID(deliverymanID); err != nil {
		return GetDeliverymanQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliverymanQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverymanQueryIsNotConstructed)
}

// DeliverymanID returns the identifier of the deliveryman to retrieve.
func (q GetDeliverymanQuery) DeliverymanID() kernel.UUID {
	return q.deliverymanID
}

func (q *GetDeliverymanQuery) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	q.deliverymanID = deliverymanID
	return nil
}
