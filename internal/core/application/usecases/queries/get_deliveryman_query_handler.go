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

// GetDeliverymanQueryHandler retrieves a single deliveryman from the database.
type GetDeliverymanQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliverymanQueryHandler creates a handler for single deliveryman queries.
// Requires a GORM database connection for query execution.
func NewGetDeliverymanQueryHandler(db *gorm.DB) GetDeliverymanQueryHandler {
	return GetDeliverymanQueryHandler{db: db}
}

// Handle executes the query to retrieve one active deliveryman with avatar.
// Returns errs.ObjectNotFoundError when the deliveryman does not exist or was
// removed.
func (h GetDeliverymanQueryHandler) Handle(
	ctx context.Context,
	query GetDeliverymanQuery,
) (GetAllDeliverymenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllDeliverymenQueryResponse{}, err
	}

	var resp GetAllDeliverymenQueryResponse
	var id uuid.UUID
	var avatarURL sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			dm.id,
			dm.name,
			dm.email,
			f.url
		FROM deliverymen dm
		LEFT JOIN files f ON f.id = dm.avatar_id
		WHERE dm.id = ? AND dm.removed_at IS NULL
	`, query.DeliverymanID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Email,
		&avatarURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAllDeliverymenQueryResponse{},
				errs.NewObjectNotFoundError("deliverymanID", query.DeliverymanID())
		}
		return GetAllDeliverymenQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetAllDeliverymenQueryResponse{}, err
	}
	if avatarURL.Valid {
		resp.AvatarURL = &avatarURL.String
	}

	return resp, nil
}
