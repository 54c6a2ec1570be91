// Package http exposes the parcel service over a JSON REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server routes to.
type Handlers struct {
	// Command handlers
	CreateRecipient   commands.CreateRecipientCommandHandler
	UpdateRecipient   commands.UpdateRecipientCommandHandler
	RemoveRecipient   commands.RemoveRecipientCommandHandler
	CreateDeliveryman commands.CreateDeliverymanCommandHandler
	UpdateDeliveryman commands.UpdateDeliverymanCommandHandler
	RemoveDeliveryman commands.RemoveDeliverymanCommandHandler
	CreateDelivery    commands.CreateDeliveryCommandHandler
	UpdateDelivery    commands.UpdateDeliveryCommandHandler
	CancelDelivery    commands.CancelDeliveryCommandHandler
	RemoveDelivery    commands.RemoveDeliveryCommandHandler
	WithdrawDelivery  commands.WithdrawDeliveryCommandHandler
	CompleteDelivery  commands.CompleteDeliveryCommandHandler
	RegisterProblem   commands.RegisterProblemCommandHandler
	CancelByProblem   commands.CancelDeliveryByProblemCommandHandler
	StoreFile         commands.StoreFileCommandHandler

	// Query handlers
	GetAllRecipients        queries.GetAllRecipientsQueryHandler
	GetRecipient            queries.GetRecipientQueryHandler
	GetAllDeliverymen       queries.GetAllDeliverymenQueryHandler
	GetDeliveryman          queries.GetDeliverymanQueryHandler
	GetAllDeliveries        queries.GetAllDeliveriesQueryHandler
	GetDeliverymanWorkload  queries.GetDeliverymanDeliveriesQueryHandler
	GetAllProblems          queries.GetAllProblemsQueryHandler
	GetProblemsByDelivery   queries.GetProblemsByDeliveryQueryHandler
}

// Server implements the REST API on top of the application use cases.
type Server struct {
	handlers  Handlers
	uploadDir string
	baseURL   string
}

// NewServer creates a new HTTP server. uploadDir is where multipart uploads
// land on disk; baseURL prefixes the public URLs handed out for them.
func NewServer(handlers Handlers, uploadDir, baseURL string) *Server {
	return &Server{
		handlers:  handlers,
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/recipients", s.CreateRecipient)
	e.GET("/recipients", s.GetRecipients)
	e.GET("/recipients/:id", s.GetRecipient)
	e.PUT("/recipients/:id", s.UpdateRecipient)
	e.DELETE("/recipients/:id", s.RemoveRecipient)

	e.POST("/deliverymen", s.CreateDeliveryman)
	e.GET("/deliverymen", s.GetDeliverymen)
	e.GET("/deliverymen/:id", s.GetDeliveryman)
	e.PUT("/deliverymen/:id", s.UpdateDeliveryman)
	e.DELETE("/deliverymen/:id", s.RemoveDeliveryman)

	e.POST("/deliveries", s.CreateDelivery)
	e.GET("/deliveries", s.GetDeliveries)
	e.PUT("/deliveries/:id", s.UpdateDelivery)
	e.DELETE("/deliveries/:id", s.CancelDelivery)
	e.DELETE("/deliveries/:id/remove", s.RemoveDelivery)

	e.GET("/deliveryman/:deliverymanId/available", s.GetAvailableDeliveries)
	e.PUT("/deliveryman/:deliverymanId/available/:deliveryId", s.UpdateDeliveryState)
	e.GET("/deliveryman/:deliverymanId/deliveries", s.GetDeliveredDeliveries)

	e.POST("/delivery/:deliveryId/problems", s.RegisterProblem)
	e.GET("/delivery/problems", s.GetProblems)
	e.GET("/delivery/:deliveryId/problems", s.GetDeliveryProblems)
	e.DELETE("/problem/:id/cancel-delivery", s.CancelDeliveryByProblem)

	e.POST("/files", s.UploadFile)
	e.Static("/files", s.uploadDir)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
