package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetAllRecipientsQueryIsNotConstructed = errors.New(
	"GetAllRecipientsQuery must be created via NewGetAllRecipientsQuery constructor",
)

// GetAllRecipientsQuery retrieves all active recipients, optionally filtered
// by name.
type GetAllRecipientsQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetAllRecipientsQuery creates a query to retrieve recipients.
// An empty nameFilter matches every active recipient.
func NewGetAllRecipientsQuery(nameFilter string) GetAllRecipientsQuery {
	return GetAllRecipientsQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRecipientsQueryIsNotConstructed)
}

// NameFilter returns the name substring filter, empty for no filter.
func (q GetAllRecipientsQuery) NameFilter() string {
	return q.nameFilter
}

// GetAllRecipientsQueryResponse represents recipient information in the read
// model.
type GetAllRecipientsQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Street     string
	Number     int
	Complement string
	City       string
	State      string
	ZipCode    string
}
