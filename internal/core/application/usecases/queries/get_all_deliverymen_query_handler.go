package queries

import (
	"context"
	"database/sql"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDeliverymenQueryHandler retrieves active deliverymen from the
// database, joined with their avatar files.
type GetAllDeliverymenQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliverymenQueryHandler creates a handler for deliveryman list queries.
// Requires a GORM database connection for query execution.
func NewGetAllDeliverymenQueryHandler(db *gorm.DB) GetAllDeliverymenQueryHandler {
	return GetAllDeliverymenQueryHandler{db: db}
}

// Handle executes the query to retrieve all active deliverymen sorted by name.
func (h GetAllDeliverymenQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliverymenQuery,
) ([]GetAllDeliverymenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliverymen := make([]GetAllDeliverymenQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dm.id,
			dm.name,
			dm.email,
			f.url
		FROM deliverymen dm
		LEFT JOIN files f ON f.id = dm.avatar_id
		WHERE dm.removed_at IS NULL
		  AND dm.name ILIKE ?
		ORDER BY dm.name
	`, "%"+query.NameFilter()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDeliverymenQueryResponse
		var id uuid.UUID
		var avatarURL sql.NullString

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&avatarURL,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if avatarURL.Valid {
			resp.AvatarURL = &avatarURL.String
		}

		deliverymen = append(deliverymen, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliverymen, nil
}
