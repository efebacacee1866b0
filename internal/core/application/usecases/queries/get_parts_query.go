package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetPartsQueryIsNotConstructed = errors.New(
	"GetPartsQuery must be created via NewGetPartsQuery constructor",
)

// GetPartsQuery retrieves every part in stock.
type GetPartsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPartsQuery creates a parameterless query listing all parts.
func NewGetPartsQuery() GetPartsQuery {
	return GetPartsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPartsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartsQueryIsNotConstructed)
}

// GetPartsQueryResponse is one part in the stock listing.
type GetPartsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Code  string
	Price kernel.Price
	Units int
}
