package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetRecipientQueryIsNotConstructed = errors.New(
	"GetRecipientQuery must be created via NewGetRecipientQuery constructor",
)

// GetRecipientQuery retrieves a single active recipient by identifier.
type GetRecipientQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRecipientQuery creates a query to retrieve one recipient.
func NewGetRecipientQuery(recipientID kernel.UUID) (GetRecipientQuery, error) {
	query := GetRecipientQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRecipientID(recipientID); err != nil {
		return GetRecipientQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
}

// RecipientID returns the identifier of the recipient to retrieve.
func (q GetRecipientQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

func (q *GetRecipientQuery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	q.recipientID = recipientID
	return nil
}
