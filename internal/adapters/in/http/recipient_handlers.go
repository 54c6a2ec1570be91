package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// recipientRequest is the body for creating and updating recipients.
type recipientRequest struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// recipientResponse is the JSON shape of a recipient in the read model.
type recipientResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     int    `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

func toRecipientResponse(r queries.GetAllRecipientsQueryResponse) recipientResponse {
	return recipientResponse{
		ID:         r.ID.String(),
		Name:       r.Name,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
	}
}

// CreateRecipient handles POST /recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req recipientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	address, err := kernel.NewAddress(req.Street, req.Number, req.Complement, req.City, req.State, req.ZipCode)
	if err != nil {
		return respondError(ctx, err)
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(recipientID, req.Name, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": recipientID.String()})
}

// UpdateRecipient handles PUT /recipients/:id.
func (s *Server) UpdateRecipient(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	var req recipientRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	address, err := kernel.NewAddress(req.Street, req.Number, req.Complement, req.City, req.State, req.ZipCode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRecipientCommand(recipientID, req.Name, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRecipients handles GET /recipients with an optional ?q= name filter.
func (s *Server) GetRecipients(ctx echo.Context) error {
	query := queries.NewGetAllRecipientsQuery(ctx.QueryParam("q"))

	recipients, err := s.handlers.GetAllRecipients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]recipientResponse, len(recipients))
	for i, r := range recipients {
		response[i] = toRecipientResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRecipient handles GET /recipients/:id.
func (s *Server) GetRecipient(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	query, err := queries.NewGetRecipientQuery(recipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	r, err := s.handlers.GetRecipient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRecipientResponse(r))
}

// RemoveRecipient handles DELETE /recipients/:id - soft delete.
func (s *Server) RemoveRecipient(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid recipient id")
	}

	cmd, err := commands.NewRemoveRecipientCommand(recipientID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
