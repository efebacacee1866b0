package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkOrderByIDQueryIsNotConstructed = errors.New(
	"GetWorkOrderByIDQuery must be created via NewGetWorkOrderByIDQuery constructor",
)

// GetWorkOrderByIDQuery retrieves one work order with its line items.
type GetWorkOrderByIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderByIDQuery creates a query for a single work order.
func NewGetWorkOrderByIDQuery(orderID kernel.UUID) (GetWorkOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWorkOrderByIDQuery{}, err
	}

	return GetWorkOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested work order.
func (q GetWorkOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// WorkOrderItemResponse is one budgeted line of a work order.
type WorkOrderItemResponse struct {
	ID           kernel.UUID
	Kind         workorder.ItemKind
	ReferencedID kernel.UUID
	Quantity     int
	UnitPrice    kernel.Price
	Subtotal     kernel.Price
}

// GetWorkOrderByIDQueryResponse is the full detail view of a work order.
type GetWorkOrderByIDQueryResponse struct {
	ID        kernel.UUID
	ClientID  *kernel.UUID
	VehicleID *kernel.UUID
	Status    workorder.Status
	Total     kernel.Price
	StartedAt *time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []WorkOrderItemResponse
}
