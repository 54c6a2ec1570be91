package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetAllDeliverymenQueryIsNotConstructed = errors.New(
	"GetAllDeliverymenQuery must be created via NewGetAllDeliverymenQuery constructor",
)

// GetAllDeliverymenQuery retrieves all active deliverymen, optionally
// filtered by name.
type GetAllDeliverymenQuery struct {
	nameFilter string

	guard guard.ConstructorGuard
}

// NewGetAllDeliverymenQuery creates a query to retrieve deliverymen.
// An empty nameFilter matches every active deliveryman.
func NewGetAllDeliverymenQuery(nameFilter string) GetAllDeliverymenQuery {
	return GetAllDeliverymenQuery{
		nameFilter: nameFilter,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliverymenQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliverymenQueryIsNotConstructed)
}

// NameFilter returns the name substring filter, empty for no filter.
func (q GetAllDeliverymenQuery) NameFilter() string {
	return q.nameFilter
}

// GetAllDeliverymenQueryResponse represents deliveryman information in the
// read model, including the avatar URL when an avatar was uploaded.
type GetAllDeliverymenQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	AvatarURL *string
}
