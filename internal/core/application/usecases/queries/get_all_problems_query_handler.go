package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllProblemsQueryHandler retrieves all problem reports from the database.
type GetAllProblemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProblemsQueryHandler creates a handler for problem list queries.
// Requires a GORM database connection for query execution.
func NewGetAllProblemsQueryHandler(db *gorm.DB) GetAllProblemsQueryHandler {
	return GetAllProblemsQueryHandler{db: db}
}

// Handle executes the query to retrieve all problem reports, newest first.
func (h GetAllProblemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProblemsQuery,
) ([]GetAllProblemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanProblems(h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.delivery_id,
			d.product,
			p.description,
			p.created_at
		FROM delivery_problems p
		JOIN deliveries d ON d.id = p.delivery_id
		ORDER BY p.created_at DESC
	`))
}

func scanProblems(tx *gorm.DB) ([]GetAllProblemsQueryResponse, error) {
	problems := make([]GetAllProblemsQueryResponse, 0)

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllProblemsQueryResponse
		var problemID, deliveryID uuid.UUID

		err = rows.Scan(
			&problemID,
			&deliveryID,
			&resp.Product,
			&resp.Description,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(problemID[:]); err != nil {
			return nil, err
		}
		if resp.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}

		problems = append(problems, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}
