package http

import (
	"net/http"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// problemRequest is the body for registering a delivery problem.
type problemRequest struct {
	Description string `json:"description"`
}

// problemResponse is the JSON shape of a problem report with a short summary
// of the delivery it was reported against.
type problemResponse struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"delivery_id"`
	Product     string    `json:"product"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProblemResponses(problems []queries.GetAllProblemsQueryResponse) []problemResponse {
	response := make([]problemResponse, len(problems))
	for i, p := range problems {
		response[i] = problemResponse{
			ID:          p.ID.String(),
			DeliveryID:  p.DeliveryID.String(),
			Product:     p.Product,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}
	return response
}

// RegisterProblem handles POST /delivery/:deliveryId/problems.
func (s *Server) RegisterProblem(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req problemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	problemID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProblemCommand(problemID, deliveryID, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterProblem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": problemID.String()})
}

// GetProblems handles GET /delivery/problems - all reported problems.
func (s *Server) GetProblems(ctx echo.Context) error {
	query := queries.NewGetAllProblemsQuery()

	problems, err := s.handlers.GetAllProblems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProblemResponses(problems))
}

// GetDeliveryProblems handles GET /delivery/:deliveryId/problems.
func (s *Server) GetDeliveryProblems(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	query, err := queries.NewGetProblemsByDeliveryQuery(deliveryID)
	if err != nil {
		return respondError(ctx, err)
	}

	problems, err := s.handlers.GetProblemsByDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProblemResponses(problems))
}

// CancelDeliveryByProblem handles DELETE /problem/:id/cancel-delivery.
// The problem record stays; the delivery it points at is canceled.
func (s *Server) CancelDeliveryByProblem(ctx echo.Context) error {
	problemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid problem id")
	}

	cmd, err := commands.NewCancelDeliveryByProblemCommand(problemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelByProblem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
