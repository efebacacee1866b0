package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetServicesQueryIsNotConstructed = errors.New(
	"GetServicesQuery must be created via NewGetServicesQuery constructor",
)

// GetServicesQuery retrieves the service catalog.
type GetServicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetServicesQuery creates a parameterless query listing the catalog.
func NewGetServicesQuery() GetServicesQuery {
	return GetServicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetServicesQuery) Validate() error {
	return q.guard.Validate(ErrGetServicesQueryIsNotConstructed)
}

// GetServicesQueryResponse is one service in the catalog listing.
type GetServicesQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Price
}
