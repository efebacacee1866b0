package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetClientsQueryIsNotConstructed = errors.New(
	"GetClientsQuery must be created via NewGetClientsQuery constructor",
)

// GetClientsQuery retrieves every registered client.
type GetClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClientsQuery creates a parameterless query listing all clients.
func NewGetClientsQuery() GetClientsQuery {
	return GetClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

// GetClientsQueryResponse is one client in the registry listing.
type GetClientsQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Document string
}
