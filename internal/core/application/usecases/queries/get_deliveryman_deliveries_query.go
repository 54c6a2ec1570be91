package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetDeliverymanDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliverymanDeliveriesQuery must be created via NewGetDeliverymanDeliveriesQuery constructor",
)

// GetDeliverymanDeliveriesQuery retrieves the deliveries assigned to one
// deliveryman, split between the open workload and the finished ones.
type GetDeliverymanDeliveriesQuery struct { //nolint:recvcheck //using for validation
	deliverymanID kernel.UUID
	delivered     bool

	guard guard.ConstructorGuard
}

// NewGetDeliverymanDeliveriesQuery creates a query for a deliveryman's
// deliveries. With delivered=false it returns the open workload (neither
// canceled nor completed); with delivered=true, the completed ones.
func NewGetDeliverymanDeliveriesQuery(deliverymanID kernel.UUID, delivered bool) (GetDeliverymanDeliveriesQuery, error) {
	query := GetDeliverymanDeliveriesQuery{
		delivered: delivered,
		guard:     guard.NewConstructorGuard(),
	}

	if err := query.setDeliverymanID(deliverymanID); err != nil {
		return GetDeliverymanDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliverymanDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverymanDeliveriesQueryIsNotConstructed)
}

// DeliverymanID returns the identifier of the deliveryman.
func (q GetDeliverymanDeliveriesQuery) DeliverymanID() kernel.UUID {
	return q.deliverymanID
}

// Delivered reports whether completed deliveries are requested instead of the
// open workload.
func (q GetDeliverymanDeliveriesQuery) Delivered() bool {
	return q.delivered
}

func (q *GetDeliverymanDeliveriesQuery) setDeliverymanID(deliverymanID kernel.UUID) error {
	if err := deliverymanID.Validate(); err != nil {
		return err
	}

	q.deliverymanID = deliverymanID
	return nil
}
