package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/labstack/echo/v4"
)

// CreateWorkOrder handles POST /api/v1/work-orders - opens a work order,
// optionally pre-budgeted with service and part lines.
//
//	@Summary	Open a work order
//	@Tags		work-orders
//	@Accept		json
//	@Produce	json
//	@Param		workOrder	body		CreateWorkOrderRequest	true	"Work order to open"
//	@Success	201			{object}	CreatedResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	422			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders [post]
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := optionalID("clientId", req.ClientID)
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := optionalID("vehicleId", req.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	serviceItems, err := buildBudgetItems(req.ServiceItems)
	if err != nil {
		return respondError(ctx, err)
	}
	partItems, err := buildBudgetItems(req.PartItems)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateWorkOrderCommand(clientID, vehicleID, serviceItems, partItems)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.handlers.CreateWorkOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetWorkOrders handles GET /api/v1/work-orders - lists work orders ordered
// by work-queue priority, optionally filtered by client, vehicle or status.
//
//	@Summary	List work orders
//	@Tags		work-orders
//	@Produce	json
//	@Param		clientId	query		string	false	"Filter by client"
//	@Param		vehicleId	query		string	false	"Filter by vehicle"
//	@Param		status		query		string	false	"Filter by status"
//	@Success	200			{array}		WorkOrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders [get]
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	var clientID, vehicleID *kernel.UUID
	var status *workorder.Status

	if raw := ctx.QueryParam("clientId"); raw != "" {
		id, err := parseUUID("clientId", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		clientID = &id
	}
	if raw := ctx.QueryParam("vehicleId"); raw != "" {
		id, err := parseUUID("vehicleId", raw)
		if err != nil {
			return respondError(ctx, err)
		}
		vehicleID = &id
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := workorder.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetWorkOrdersQuery(clientID, vehicleID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]WorkOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = workOrderFromQuery(order)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkOrderByID handles GET /api/v1/work-orders/:id - retrieves one work
// order with its budget lines.
//
//	@Summary	Get a work order
//	@Tags		work-orders
//	@Produce	json
//	@Param		id	path		string	true	"Work order id"
//	@Success	200	{object}	WorkOrderDetailResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id} [get]
func (s *Server) GetWorkOrderByID(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetWorkOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.handlers.GetWorkOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, workOrderDetailFromQuery(order))
}

// RemoveWorkOrder handles DELETE /api/v1/work-orders/:id - removes a work
// order that has not started or has already concluded.
//
//	@Summary	Remove a work order
//	@Tags		work-orders
//	@Param		id	path	string	true	"Work order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id} [delete]
func (s *Server) RemoveWorkOrder(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveWorkOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachClientVehicle handles POST /api/v1/work-orders/:id/attach - binds a
// client, and optionally one of their vehicles, to a work order.
//
//	@Summary	Attach client and vehicle
//	@Tags		work-orders
//	@Accept		json
//	@Param		id			path	string						true	"Work order id"
//	@Param		attachment	body	AttachClientVehicleRequest	true	"Client and vehicle to bind"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id}/attach [post]
func (s *Server) AttachClientVehicle(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AttachClientVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	clientID, err := parseUUID("clientId", req.ClientID)
	if err != nil {
		return respondError(ctx, err)
	}
	vehicleID, err := optionalID("vehicleId", req.VehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAttachClientVehicleCommand(orderID, clientID, vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AttachClientVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/work-orders/:id/items - adds a budget
// line to a work order in diagnosis.
//
//	@Summary	Add a budget line
//	@Tags		work-orders
//	@Accept		json
//	@Param		id		path	string				true	"Work order id"
//	@Param		item	body	AddLineItemRequest	true	"Line to add"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id}/items [post]
func (s *Server) AddLineItem(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AddLineItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := workorder.ItemKindFromString(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}
	referencedID, err := parseUUID("referencedId", req.ReferencedID)
	if err != nil {
		return respondError(ctx, err)
	}
	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddLineItemCommand(orderID, kind, referencedID, quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddLineItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeWorkOrderStatus handles PATCH /api/v1/work-orders/:id/status -
// performs a manual lifecycle transition.
//
//	@Summary	Change work order status
//	@Tags		work-orders
//	@Accept		json
//	@Param		id		path	string				true	"Work order id"
//	@Param		status	body	ChangeStatusRequest	true	"Target status"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id}/status [patch]
func (s *Server) ChangeWorkOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := workorder.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeWorkOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveBudget handles POST /api/v1/work-orders/:id/approve - approves a
// budget awaiting the client's decision and starts execution.
//
//	@Summary	Approve a budget
//	@Tags		work-orders
//	@Param		id	path	string	true	"Work order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id}/approve [post]
func (s *Server) ApproveBudget(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveBudgetCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ApproveBudget.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectBudget handles POST /api/v1/work-orders/:id/reject - rejects a
// budget awaiting the client's decision, canceling the order.
//
//	@Summary	Reject a budget
//	@Tags		work-orders
//	@Param		id	path	string	true	"Work order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/work-orders/{id}/reject [post]
func (s *Server) RejectBudget(ctx echo.Context) error {
	orderID, err := parseUUID("orderId", ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectBudgetCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RejectBudget.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func optionalID(paramName string, value *string) (*kernel.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	id, err := parseUUID(paramName, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func buildBudgetItems(requests []BudgetItemRequest) ([]commands.BudgetItem, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	items := make([]commands.BudgetItem, 0, len(requests))
	for _, req := range requests {
		id, err := parseUUID("id", req.ID)
		if err != nil {
			return nil, err
		}
		quantity, err := kernel.NewQuantity(req.Quantity)
		if err != nil {
			return nil, err
		}

		item, err := commands.NewBudgetItem(id, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
