package queries

import (
	"context"
	"database/sql"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliverymanDeliveriesQueryHandler retrieves one deliveryman's deliveries
// from the database.
type GetDeliverymanDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliverymanDeliveriesQueryHandler creates a handler for deliveryman
// workload queries. Requires a GORM database connection for query execution.
func NewGetDeliverymanDeliveriesQueryHandler(db *gorm.DB) GetDeliverymanDeliveriesQueryHandler {
	return GetDeliverymanDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve the deliveryman's open workload or,
// when Delivered is set, the completed deliveries. Removed deliveries are
// excluded either way.
func (h GetDeliverymanDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliverymanDeliveriesQuery,
) ([]GetAllDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stateFilter := "d.canceled_at IS NULL AND d.end_date IS NULL"
	if query.Delivered() {
		stateFilter = "d.end_date IS NOT NULL"
	}

	deliveries := make([]GetAllDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.product,
			d.start_date,
			d.end_date,
			d.canceled_at,
			d.created_at,
			r.id,
			r.name,
			r.city,
			r.state,
			dm.id,
			dm.name,
			dm.email,
			f.url
		FROM deliveries d
		JOIN recipients r ON r.id = d.recipient_id
		JOIN deliverymen dm ON dm.id = d.deliveryman_id
		LEFT JOIN files f ON f.id = d.signature_id
		WHERE d.removed_at IS NULL
		  AND d.deliveryman_id = ?
		  AND `+stateFilter+`
		ORDER BY d.created_at DESC
	`, query.DeliverymanID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDeliveriesQueryResponse
		var deliveryID, recipientID, deliverymanID uuid.UUID
		var startDate, endDate, canceledAt sql.NullTime
		var signatureURL sql.NullString

		err = rows.Scan(
			&deliveryID,
			&resp.Product,
			&startDate,
			&endDate,
			&canceledAt,
			&resp.CreatedAt,
			&recipientID,
			&resp.RecipientName,
			&resp.City,
			&resp.State,
			&deliverymanID,
			&resp.DeliverymanName,
			&resp.DeliverymanEmail,
			&signatureURL,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}
		if resp.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
			return nil, err
		}
		if resp.DeliverymanID, err = kernel.UUIDFromBytes(deliverymanID[:]); err != nil {
			return nil, err
		}

		resp.StartDate = nullableTime(startDate)
		resp.EndDate = nullableTime(endDate)
		resp.CanceledAt = nullableTime(canceledAt)
		if signatureURL.Valid {
			resp.SignatureURL = &signatureURL.String
		}
		resp.Status = deriveStatus(resp.CanceledAt, resp.EndDate, resp.StartDate)

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
