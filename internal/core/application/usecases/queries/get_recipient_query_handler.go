package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecipientQueryHandler retrieves a single recipient from the database.
type GetRecipientQueryHandler struct {
	db *gorm.DB
}

// NewGetRecipientQueryHandler creates a handler for single recipient queries.
// Requires a GORM database connection for query execution.
func NewGetRecipientQueryHandler(db *gorm.DB) GetRecipientQueryHandler {
	return GetRecipientQueryHandler{db: db}
}

// Handle executes the query to retrieve one active recipient.
// Returns errs.ObjectNotFoundError when the recipient does not exist or was
// removed.
func (h GetRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetRecipientQuery,
) (GetAllRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllRecipientsQueryResponse{}, err
	}

	var resp GetAllRecipientsQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			street,
			number,
			complement,
			city,
			state,
			zip_code
		FROM recipients
		WHERE id = ? AND removed_at IS NULL
	`, query.RecipientID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Street,
		&resp.Number,
		&resp.Complement,
		&resp.City,
		&resp.State,
		&resp.ZipCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllRecipientsQueryResponse{},
				errs.NewObjectNotFoundError("recipientID", query.RecipientID())
		}
		return GetAllRecipientsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAllRecipientsQueryResponse{}, err
	}

	return resp, nil
}
