// Package http exposes the application use cases over an Echo REST API.
// All business routes live under /api/v1 behind the admin bearer token;
// only the health check, the login endpoint and the Swagger UI are open.
package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateWorkOrder     commands.CreateWorkOrderCommandHandler
	AttachClientVehicle commands.AttachClientVehicleCommandHandler
	AddLineItem         commands.AddLineItemCommandHandler
	ChangeStatus        commands.ChangeWorkOrderStatusCommandHandler
	ApproveBudget       commands.ApproveBudgetCommandHandler
	RejectBudget        commands.RejectBudgetCommandHandler
	RemoveWorkOrder     commands.RemoveWorkOrderCommandHandler
	CreatePart          commands.CreatePartCommandHandler
	RestockPart         commands.RestockPartCommandHandler
	CreateService       commands.CreateServiceCommandHandler
	CreateClient        commands.CreateClientCommandHandler
	CreateVehicle       commands.CreateVehicleCommandHandler

	GetWorkOrders    queries.GetWorkOrdersQueryHandler
	GetWorkOrderByID queries.GetWorkOrderByIDQueryHandler
	GetParts         queries.GetPartsQueryHandler
	GetServices      queries.GetServicesQueryHandler
	GetClients       queries.GetClientsQueryHandler
	GetVehicles      queries.GetVehiclesQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *Authenticator) {
	e.GET("/health", s.Health)
	e.POST("/auth/login", auth.Login)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", auth.Middleware())

	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.GetClients)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.GetVehicles)

	api.POST("/services", s.CreateService)
	api.GET("/services", s.GetServices)

	api.POST("/parts", s.CreatePart)
	api.GET("/parts", s.GetParts)
	api.POST("/parts/:id/restock", s.RestockPart)

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders", s.GetWorkOrders)
	api.GET("/work-orders/:id", s.GetWorkOrderByID)
	api.DELETE("/work-orders/:id", s.RemoveWorkOrder)
	api.POST("/work-orders/:id/attach", s.AttachClientVehicle)
	api.POST("/work-orders/:id/items", s.AddLineItem)
	api.PATCH("/work-orders/:id/status", s.ChangeWorkOrderStatus)
	api.POST("/work-orders/:id/approve", s.ApproveBudget)
	api.POST("/work-orders/:id/reject", s.RejectBudget)
}

// Health handles GET /health - liveness probe, no auth required.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
