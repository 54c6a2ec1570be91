// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
	"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
)

// GetAllDeliveriesQuery retrieves all non-removed deliveries, optionally
// filtered by product description.
//
// Example:
//
//	query := NewGetAllDeliveriesQuery("keyboard")
//	handler := NewGetAllDeliveriesQueryHandler(db)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliveries: %w", err)
//	}
//
//	for _, d := range deliveries {
//	    fmt.Printf("%s -> %s (%s)\n", d.Product, d.RecipientName, d.Status)
//	}
type GetAllDeliveriesQuery struct {
	productFilter string

	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a query to retrieve deliveries.
// An empty productFilter matches every delivery.
func NewGetAllDeliveriesQuery(productFilter string) GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{
		productFilter: productFilter,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}

// ProductFilter returns the product substring filter, empty for no filter.
func (q GetAllDeliveriesQuery) ProductFilter() string {
	return q.productFilter
}

// GetAllDeliveriesQueryResponse is the enriched delivery read model: the
// delivery itself plus the names of the participants and the signature URL.
type GetAllDeliveriesQueryResponse struct {
	ID               kernel.UUID
	Product          string
	Status           string
	RecipientID      kernel.UUID
	RecipientName    string
	City             string
	State            string
	DeliverymanID    kernel.UUID
	DeliverymanName  string
	DeliverymanEmail string
	SignatureURL     *string
	StartDate        *time.Time
	EndDate          *time.Time
	CanceledAt       *time.Time
	CreatedAt        time.Time
}
