package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetAllProblemsQueryIsNotConstructed = errors.New(
	"GetAllProblemsQuery must be created via NewGetAllProblemsQuery constructor",
)

// GetAllProblemsQuery retrieves every reported delivery problem.
type GetAllProblemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProblemsQuery creates a query to retrieve all problem reports.
func NewGetAllProblemsQuery() GetAllProblemsQuery {
	return GetAllProblemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProblemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProblemsQueryIsNotConstructed)
}

// GetAllProblemsQueryResponse represents a problem report in the read model,
// with a short summary of the delivery it was reported against.
type GetAllProblemsQueryResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	Product     string
	Description string
	CreatedAt   time.Time
}
