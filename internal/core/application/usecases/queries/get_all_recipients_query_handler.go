package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRecipientsQueryHandler retrieves active recipients from the database.
type GetAllRecipientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRecipientsQueryHandler creates a handler for recipient list queries.
// Requires a GORM database connection for query execution.
func NewGetAllRecipientsQueryHandler(db *gorm.DB) GetAllRecipientsQueryHandler {
	return GetAllRecipientsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active recipients sorted by name.
func (h GetAllRecipientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllRecipientsQuery,
) ([]GetAllRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recipients := make([]GetAllRecipientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE removed_at IS NULL
		  AND name ILIKE ?
		ORDER BY name
	`, "%"+query.NameFilter()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRecipientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
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
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		recipients = append(recipients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}
