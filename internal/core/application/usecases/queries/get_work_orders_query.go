// Package queries contains read operations for the workshop backend.
// Handlers read directly from the database, bypassing the aggregates, and
// return flat response structs shaped for the HTTP layer.
package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves work orders, optionally narrowed to a client,
// a vehicle or a lifecycle status. The result is ordered as a work queue:
// orders the shop should look at first come first.
//
// Example:
//
//	query, err := NewGetWorkOrdersQuery(&clientID, nil, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetWorkOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetWorkOrdersQuery struct {
	clientID  *kernel.UUID
	vehicleID *kernel.UUID
	status    *workorder.Status

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a query listing work orders.
// Every filter is optional; provided filters are validated.
func NewGetWorkOrdersQuery(
	clientID, vehicleID *kernel.UUID, status *workorder.Status,
) (GetWorkOrdersQuery, error) {
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
	}

	return GetWorkOrdersQuery{
		clientID:  clientID,
		vehicleID: vehicleID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// ClientID returns the client filter, or nil.
func (q GetWorkOrdersQuery) ClientID() *kernel.UUID {
	return q.clientID
}

// VehicleID returns the vehicle filter, or nil.
func (q GetWorkOrdersQuery) VehicleID() *kernel.UUID {
	return q.vehicleID
}

// Status returns the status filter, or nil.
func (q GetWorkOrdersQuery) Status() *workorder.Status {
	return q.status
}

// GetWorkOrdersQueryResponse is one work order in the work queue listing.
type GetWorkOrdersQueryResponse struct {
	ID        kernel.UUID
	ClientID  *kernel.UUID
	VehicleID *kernel.UUID
	Status    workorder.Status
	Total     kernel.Price
	CreatedAt time.Time
}
