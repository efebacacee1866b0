package http

import (
	"time"

	"workshop/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the signed access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// CreateClientRequest registers a new client.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
}

// ClientResponse is one registered client.
type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
}

// CreateVehicleRequest registers a vehicle for an existing client.
type CreateVehicleRequest struct {
	ClientID string `json:"clientId"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
}

// VehicleResponse is one registered vehicle.
type VehicleResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
}

// CreateServiceRequest adds a catalog service.
type CreateServiceRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceResponse is one catalog service.
type ServiceResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CreatePartRequest adds a part with its opening stock.
type CreatePartRequest struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Price        float64 `json:"price"`
	InitialUnits int     `json:"initialUnits"`
}

// RestockPartRequest adds units to a part's stock.
type RestockPartRequest struct {
	Quantity int `json:"quantity"`
}

// PartResponse is one part with its current stock.
type PartResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
	Units int     `json:"units"`
}

// BudgetItemRequest is one requested line of a new work order.
type BudgetItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateWorkOrderRequest opens a work order, optionally bound to a client and
// vehicle and optionally pre-budgeted with service and part lines.
type CreateWorkOrderRequest struct {
	ClientID     *string             `json:"clientId,omitempty"`
	VehicleID    *string             `json:"vehicleId,omitempty"`
	ServiceItems []BudgetItemRequest `json:"serviceItems,omitempty"`
	PartItems    []BudgetItemRequest `json:"partItems,omitempty"`
}

// AttachClientVehicleRequest binds a client, and optionally one of their
// vehicles, to a work order.
type AttachClientVehicleRequest struct {
	ClientID  string  `json:"clientId"`
	VehicleID *string `json:"vehicleId,omitempty"`
}

// AddLineItemRequest adds a budget line to a work order in diagnosis.
type AddLineItemRequest struct {
	Kind         string `json:"kind"`
	ReferencedID string `json:"referencedId"`
	Quantity     int    `json:"quantity"`
}

// ChangeStatusRequest requests a manual lifecycle transition.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// WorkOrderResponse is the listing view of a work order.
type WorkOrderResponse struct {
	ID        string    `json:"id"`
	ClientID  *string   `json:"clientId,omitempty"`
	VehicleID *string   `json:"vehicleId,omitempty"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// WorkOrderItemResponse is one budget line of a work order.
type WorkOrderItemResponse struct {
	ID           string  `json:"id"`
	Kind         string  `json:"kind"`
	ReferencedID string  `json:"referencedId"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Subtotal     float64 `json:"subtotal"`
}

// WorkOrderDetailResponse is the full view of a work order with its items
// and execution timestamps.
type WorkOrderDetailResponse struct {
	ID        string                  `json:"id"`
	ClientID  *string                 `json:"clientId,omitempty"`
	VehicleID *string                 `json:"vehicleId,omitempty"`
	Status    string                  `json:"status"`
	Total     float64                 `json:"total"`
	StartedAt *time.Time              `json:"startedAt,omitempty"`
	EndedAt   *time.Time              `json:"endedAt,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Items     []WorkOrderItemResponse `json:"items"`
}

func workOrderFromQuery(r queries.GetWorkOrdersQueryResponse) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:        r.ID.String(),
		Status:    r.Status.String(),
		Total:     r.Total.Float64(),
		CreatedAt: r.CreatedAt,
	}
	if r.ClientID != nil {
		clientID := r.ClientID.String()
		resp.ClientID = &clientID
	}
	if r.VehicleID != nil {
		vehicleID := r.VehicleID.String()
		resp.VehicleID = &vehicleID
	}
	return resp
}

func workOrderDetailFromQuery(r queries.GetWorkOrderByIDQueryResponse) WorkOrderDetailResponse {
	items := make([]WorkOrderItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = WorkOrderItemResponse{
			ID:           item.ID.String(),
			Kind:         item.Kind.String(),
			ReferencedID: item.ReferencedID.String(),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice.Float64(),
			Subtotal:     item.Subtotal.Float64(),
		}
	}

	resp := WorkOrderDetailResponse{
		ID:        r.ID.String(),
		Status:    r.Status.String(),
		Total:     r.Total.Float64(),
		StartedAt: r.StartedAt,
		EndedAt:   r.EndedAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Items:     items,
	}
	if r.ClientID != nil {
		clientID := r.ClientID.String()
		resp.ClientID = &clientID
	}
	if r.VehicleID != nil {
		vehicleID := r.VehicleID.String()
		resp.VehicleID = &vehicleID
	}
	return resp
}
