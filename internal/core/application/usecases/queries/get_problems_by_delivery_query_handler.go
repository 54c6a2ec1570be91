package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetProblemsByDeliveryQueryHandler retrieves one delivery's problem reports
// from the database.
type GetProblemsByDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetProblemsByDeliveryQueryHandler creates a handler for per-delivery
// problem queries. Requires a GORM database connection for query execution.
func NewGetProblemsByDeliveryQueryHandler(db *gorm.DB) GetProblemsByDeliveryQueryHandler {
	return GetProblemsByDeliveryQueryHandler{db: db}
}

// Handle executes the query to retrieve the delivery's problems, oldest first.
func (h GetProblemsByDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetProblemsByDeliveryQuery,
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
		WHERE p.delivery_id = ?
		ORDER BY p.created_at
	`, query.DeliveryID().Bytes()))
}
