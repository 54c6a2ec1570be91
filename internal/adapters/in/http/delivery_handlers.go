package http

import (
	"net/http"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// createDeliveryRequest is the body for registering a delivery.
type createDeliveryRequest struct {
	Product       string `json:"product"`
	RecipientID   string `json:"recipient_id"`
	DeliverymanID string `json:"deliveryman_id"`
}

// updateDeliveryRequest is the body for the administrative partial update.
// Every field is optional; absent fields keep their current values.
type updateDeliveryRequest struct {
	Product       *string    `json:"product"`
	RecipientID   *string    `json:"recipient_id"`
	DeliverymanID *string    `json:"deliveryman_id"`
	SignatureID   *string    `json:"signature_id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// deliveryStateRequest is the body for the deliveryman's withdraw/complete
// route. A start_date means withdrawal; an end_date plus signature_id means
// completion.
type deliveryStateRequest struct {
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	SignatureID *string    `json:"signature_id"`
}

// createDeliveryResponse echoes the registered delivery together with the
// recipient and deliveryman it was assigned to.
type createDeliveryResponse struct {
	ID          string              `json:"id"`
	Product     string              `json:"product"`
	Recipient   recipientResponse   `json:"recipient"`
	Deliveryman deliverymanResponse `json:"deliveryman"`
}

// deliveryResponse is the JSON shape of a delivery in the read model,
// enriched with its recipient, deliveryman and signature.
type deliveryResponse struct {
	ID               string     `json:"id"`
	Product          string     `json:"product"`
	Status           string     `json:"status"`
	RecipientID      string     `json:"recipient_id"`
	RecipientName    string     `json:"recipient_name"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	DeliverymanID    string     `json:"deliveryman_id"`
	DeliverymanName  string     `json:"deliveryman_name"`
	DeliverymanEmail string     `json:"deliveryman_email"`
	SignatureURL     *string    `json:"signature_url"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	CanceledAt       *time.Time `json:"canceled_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toDeliveryResponse(d queries.GetAllDeliveriesQueryResponse) deliveryResponse {
	return deliveryResponse{
		ID:               d.ID.String(),
		Product:          d.Product,
		Status:           d.Status,
		RecipientID:      d.RecipientID.String(),
		RecipientName:    d.RecipientName,
		City:             d.City,
		State:            d.State,
		DeliverymanID:    d.DeliverymanID.String(),
		DeliverymanName:  d.DeliverymanName,
		DeliverymanEmail: d.DeliverymanEmail,
		SignatureURL:     d.SignatureURL,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		CanceledAt:       d.CanceledAt,
		CreatedAt:        d.CreatedAt,
	}
}

func toDeliveryResponses(deliveries []queries.GetAllDeliveriesQueryResponse) []deliveryResponse {
	response := make([]deliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = toDeliveryResponse(d)
	}
	return response
}

// CreateDelivery handles POST /deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req createDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	deliverymanID, err := kernel.UUIDFromString(req.DeliverymanID)
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, recipientID, deliverymanID, req.Product)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	recipientQuery, err := queries.NewGetRecipientQuery(recipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	rec, err := s.handlers.GetRecipient.Handle(ctx.Request().Context(), recipientQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	deliverymanQuery, err := queries.NewGetDeliverymanQuery(deliverymanID)
	if err != nil {
		return respondError(ctx, err)
	}

	dm, err := s.handlers.GetDeliveryman.Handle(ctx.Request().Context(), deliverymanQuery)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createDeliveryResponse{
		ID:          deliveryID.String(),
		Product:     req.Product,
		Recipient:   toRecipientResponse(rec),
		Deliveryman: toDeliverymanResponse(dm),
	})
}

// UpdateDelivery handles PUT /deliveries/:id - administrative partial update.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req updateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	recipientID, err := parseOptionalUUID(req.RecipientID)
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	deliverymanID, err := parseOptionalUUID(req.DeliverymanID)
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	signatureID, err := parseOptionalUUID(req.SignatureID)
	if err != nil {
		return badRequest(ctx, "invalid signature id")
	}

	cmd, err := commands.NewUpdateDeliveryCommand(
		deliveryID, req.Product, recipientID, deliverymanID, signatureID, req.StartDate, req.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveries handles GET /deliveries with an optional ?q= product filter.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery(ctx.QueryParam("q"))

	deliveries, err := s.handlers.GetAllDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// CancelDelivery handles DELETE /deliveries/:id - cancels an open delivery.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDelivery handles DELETE /deliveries/:id/remove - soft delete.
func (s *Server) RemoveDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	cmd, err := commands.NewRemoveDeliveryCommand(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDeliveries handles GET /deliveryman/:deliverymanId/available -
// the deliveryman's open workload.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	return s.deliverymanDeliveries(ctx, false)
}

// GetDeliveredDeliveries handles GET /deliveryman/:deliverymanId/deliveries -
// the deliveryman's completed deliveries.
func (s *Server) GetDeliveredDeliveries(ctx echo.Context) error {
	return s.deliverymanDeliveries(ctx, true)
}

func (s *Server) deliverymanDeliveries(ctx echo.Context, delivered bool) error {
	deliverymanID, err := kernel.UUIDFromString(ctx.Param("deliverymanId"))
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	query, err := queries.NewGetDeliverymanDeliveriesQuery(deliverymanID, delivered)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveries, err := s.handlers.GetDeliverymanWorkload.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponses(deliveries))
}

// UpdateDeliveryState handles PUT /deliveryman/:deliverymanId/available/:deliveryId.
// With a start_date the deliveryman withdraws the package; with an end_date
// and signature_id they complete the delivery.
func (s *Server) UpdateDeliveryState(ctx echo.Context) error {
	deliverymanID, err := kernel.UUIDFromString(ctx.Param("deliverymanId"))
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req deliveryStateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	switch {
	case req.EndDate != nil:
		if req.SignatureID == nil {
			return badRequest(ctx, "signature_id is required to complete a delivery")
		}

		signatureID, sigErr := kernel.UUIDFromString(*req.SignatureID)
		if sigErr != nil {
			return badRequest(ctx, "invalid signature id")
		}

		cmd, cmdErr := commands.NewCompleteDeliveryCommand(deliveryID, deliverymanID, signatureID, *req.EndDate)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}

		if err = s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}

	case req.StartDate != nil:
		cmd, cmdErr := commands.NewWithdrawDeliveryCommand(deliveryID, deliverymanID, *req.StartDate)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}

		if err = s.handlers.WithdrawDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}

	default:
		return badRequest(ctx, "either start_date or end_date is required")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseOptionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
