package queries

import (
	"context"
	"database/sql"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDeliveriesQueryHandler retrieves enriched delivery rows from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetAllDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveriesQueryHandler creates a handler for delivery list queries.
// Requires a GORM database connection for query execution.
func NewGetAllDeliveriesQueryHandler(db *gorm.DB) GetAllDeliveriesQueryHandler {
	return GetAllDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-removed deliveries together
// with their recipient, deliveryman and signature file. Results are sorted by
// creation time, newest first.
func (h GetAllDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveriesQuery,
) ([]GetAllDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		  AND d.product ILIKE ?
		ORDER BY d.created_at DESC
	`, "%"+query.ProductFilter()+"%").Rows()
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

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

// deriveStatus maps the recorded timestamps to a display status. Removed
// deliveries never reach this point; list queries exclude them.
func deriveStatus(canceledAt, endDate, startDate *time.Time) string {
	switch {
	case canceledAt != nil:
		return delivery.Canceled.String()
	case endDate != nil:
		return delivery.Delivered.String()
	case startDate != nil:
		return delivery.Withdrawn.String()
	default:
		return delivery.Open.String()
	}
}
