package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// deliverymanRequest is the body for creating and updating deliverymen.
// AvatarID is optional and must reference an uploaded file.
type deliverymanRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	AvatarID *string `json:"avatar_id"`
}

// deliverymanResponse is the JSON shape of a deliveryman in the read model.
type deliverymanResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

func toDeliverymanResponse(dm queries.GetAllDeliverymenQueryResponse) deliverymanResponse {
	return deliverymanResponse{
		ID:        dm.ID.String(),
		Name:      dm.Name,
		Email:     dm.Email,
		AvatarURL: dm.AvatarURL,
	}
}

// CreateDeliveryman handles POST /deliverymen.
func (s *Server) CreateDeliveryman(ctx echo.Context) error {
	var req deliverymanRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	deliverymanID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliverymanCommand(deliverymanID, req.Name, email)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateDeliveryman.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": deliverymanID.String()})
}

// UpdateDeliveryman handles PUT /deliverymen/:id.
func (s *Server) UpdateDeliveryman(ctx echo.Context) error {
	deliverymanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	var req deliverymanRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	var avatarID *kernel.UUID
	if req.AvatarID != nil {
		id, avatarErr := kernel.UUIDFromString(*req.AvatarID)
		if avatarErr != nil {
			return badRequest(ctx, "invalid avatar id")
		}
		avatarID = &id
	}

	cmd, err := commands.NewUpdateDeliverymanCommand(deliverymanID, req.Name, email, avatarID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateDeliveryman.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliverymen handles GET /deliverymen with an optional ?q= name filter.
func (s *Server) GetDeliverymen(ctx echo.Context) error {
	query := queries.NewGetAllDeliverymenQuery(ctx.QueryParam("q"))

	deliverymen, err := s.handlers.GetAllDeliverymen.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]deliverymanResponse, len(deliverymen))
	for i, dm := range deliverymen {
		response[i] = toDeliverymanResponse(dm)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryman handles GET /deliverymen/:id.
func (s *Server) GetDeliveryman(ctx echo.Context) error {
	deliverymanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	query, err := queries.NewGetDeliverymanQuery(deliverymanID)
	if err != nil {
		return respondError(ctx, err)
	}

	dm, err := s.handlers.GetDeliveryman.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliverymanResponse(dm))
}

// RemoveDeliveryman handles DELETE /deliverymen/:id - soft delete.
func (s *Server) RemoveDeliveryman(ctx echo.Context) error {
	deliverymanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid deliveryman id")
	}

	cmd, err := commands.NewRemoveDeliverymanCommand(deliverymanID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveDeliveryman.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
