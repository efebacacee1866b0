package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreateServiceCommandIsNotConstructed = errors.New(
	"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
)

// CreateServiceCommand represents a request to add a service to the catalog.
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand creates a command adding a catalog service.
// Name and price bounds are enforced by the aggregate.
func NewCreateServiceCommand(name string, price kernel.Price) (CreateServiceCommand, error) {
	if err := price.Validate(); err != nil {
		return CreateServiceCommand{}, err
	}

	return CreateServiceCommand{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

// Name returns the service's display name.
func (c CreateServiceCommand) Name() string {
	return c.name
}

// Price returns the labor price.
func (c CreateServiceCommand) Price() kernel.Price {
	return c.price
}
