package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateClient handles POST /api/v1/clients - registers a client.
//
//	@Summary	Register a client
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Param		client	body		CreateClientRequest	true	"Client to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/clients [post]
func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Document)
	if err != nil {
		return respondError(ctx, err)
	}

	clientID, err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: clientID.String()})
}

// GetClients handles GET /api/v1/clients - lists registered clients.
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Success	200	{array}	ClientResponse
//	@Security	BearerAuth
//	@Router		/clients [get]
func (s *Server) GetClients(ctx echo.Context) error {
	clients, err := s.handlers.GetClients.Handle(ctx.Request().Context(), queries.NewGetClientsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ClientResponse, len(clients))
	for i, c := range clients {
		response[i] = ClientResponse{
			ID:       c.ID.String(),
			Name:     c.Name,
			Document: c.Document,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles - registers a vehicle for an
// existing client.
//
//	@Summary	Register a vehicle
//	@Tags		vehicles
//	@Accept		json
//	@Produce	json
//	@Param		vehicle	body		CreateVehicleRequest	true	"Vehicle to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/vehicles [post]
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req CreateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := parseUUID("clientId", req.ClientID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(clientID, req.Plate, req.Model, req.Year)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicleID, err := s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: vehicleID.String()})
}

// GetVehicles handles GET /api/v1/vehicles - lists vehicles, optionally for
// one client.
//
//	@Summary	List vehicles
//	@Tags		vehicles
//	@Produce	json
//	@Param		clientId	query		string	false	"Filter by owner"
//	@Success	200			{array}		VehicleResponse
//	@Failure	400			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/vehicles [get]
func (s *Server) GetVehicles(ctx echo.Context) error {
	var clientID *kernel.UUID
	if raw := ctx.QueryParam("clientId"); raw != "" {
		id, err := parseUUID("clientId", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		clientID = &id
	}

	query, err := queries.NewGetVehiclesQuery(clientID)
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.handlers.GetVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		response[i] = VehicleResponse{
			ID:       v.ID.String(),
			ClientID: v.ClientID.String(),
			Plate:    v.Plate,
			Model:    v.Model,
			Year:     v.Year,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateService handles POST /api/v1/services - adds a catalog service.
//
//	@Summary	Add a catalog service
//	@Tags		services
//	@Accept		json
//	@Produce	json
//	@Param		service	body		CreateServiceRequest	true	"Service to add"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/services [post]
func (s *Server) CreateService(ctx echo.Context) error {
	var req CreateServiceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.PriceFromFloat(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateServiceCommand(req.Name, price)
	if err != nil {
		return respondError(ctx, err)
	}

	serviceID, err := s.handlers.CreateService.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: serviceID.String()})
}

// GetServices handles GET /api/v1/services - lists the service catalog.
//
//	@Summary	List catalog services
//	@Tags		services
//	@Produce	json
//	@Success	200	{array}	ServiceResponse
//	@Security	BearerAuth
//	@Router		/services [get]
func (s *Server) GetServices(ctx echo.Context) error {
	services, err := s.handlers.GetServices.Handle(ctx.Request().Context(), queries.NewGetServicesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ServiceResponse, len(services))
	for i, svc := range services {
		response[i] = ServiceResponse{
			ID:    svc.ID.String(),
			Name:  svc.Name,
			Price: svc.Price.Float64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePart handles POST /api/v1/parts - adds a part with its opening
// stock.
//
//	@Summary	Add a part
//	@Tags		parts
//	@Accept		json
//	@Produce	json
//	@Param		part	body		CreatePartRequest	true	"Part to add"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/parts [post]
func (s *Server) CreatePart(ctx echo.Context) error {
	var req CreatePartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.PriceFromFloat(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreatePartCommand(req.Name, req.Code, price, req.InitialUnits)
	if err != nil {
		return respondError(ctx, err)
	}

	partID, err := s.handlers.CreatePart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: partID.String()})
}

// GetParts handles GET /api/v1/parts - lists parts with current stock.
//
//	@Summary	List parts
//	@Tags		parts
//	@Produce	json
//	@Success	200	{array}	PartResponse
//	@Security	BearerAuth
//	@Router		/parts [get]
func (s *Server) GetParts(ctx echo.Context) error {
	parts, err := s.handlers.GetParts.Handle(ctx.Request().Context(), queries.NewGetPartsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PartResponse, len(parts))
	for i, p := range parts {
		response[i] = PartResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			Code:  p.Code,
			Price: p.Price.Float64(),
			Units: p.Units,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RestockPart handles POST /api/v1/parts/:id/restock - adds units to a
// part's stock.
//
//	@Summary	Restock a part
//	@Tags		parts
//	@Accept		json
//	@Param		id		path	string				true	"Part id"
//	@Param		restock	body	RestockPartRequest	true	"Units to add"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/parts/{id}/restock [post]
func (s *Server) RestockPart(ctx echo.Context) error {
	partID, err := parseUUID("partId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RestockPartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRestockPartCommand(partID, quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RestockPart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
