package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves registered vehicles, optionally narrowed to one
// client's fleet.
type GetVehiclesQuery struct {
	clientID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query listing vehicles. The client filter is
// optional.
func NewGetVehiclesQuery(clientID *kernel.UUID) (GetVehiclesQuery, error) {
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetVehiclesQuery{}, err
		}
	}

	return GetVehiclesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// ClientID returns the client filter, or nil.
func (q GetVehiclesQuery) ClientID() *kernel.UUID {
	return q.clientID
}

// GetVehiclesQueryResponse is one vehicle in the registry listing.
type GetVehiclesQueryResponse struct {
	ID       kernel.UUID
	ClientID kernel.UUID
	Plate    string
	Model    string
	Year     int
}
