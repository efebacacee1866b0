package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreatePartCommandIsNotConstructed = errors.New(
	"CreatePartCommand must be created via NewCreatePartCommand constructor",
)

// CreatePartCommand represents a request to list a new part in stock.
type CreatePartCommand struct { //nolint:recvcheck //using for validation
	name         string
	code         string
	price        kernel.Price
	initialUnits int

	guard guard.ConstructorGuard
}

// NewCreatePartCommand creates a command listing a part.
// The code is optional, the initial unit count may be zero. Name and stock
// bounds are enforced by the aggregate; the command only validates the
// price value object it carries.
func NewCreatePartCommand(name, code string, price kernel.Price, initialUnits int) (CreatePartCommand, error) {
	if err := price.Validate(); err != nil {
		return CreatePartCommand{}, err
	}

	return CreatePartCommand{
		name:         name,
		code:         code,
		price:        price,
		initialUnits: initialUnits,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartCommandIsNotConstructed)
}

// Name returns the part's display name.
func (c CreatePartCommand) Name() string {
	return c.name
}

// Code returns the shop-internal reference code, possibly empty.
func (c CreatePartCommand) Code() string {
	return c.code
}

// Price returns the unit price.
func (c CreatePartCommand) Price() kernel.Price {
	return c.price
}

// InitialUnits returns the starting shelf count.
func (c CreatePartCommand) InitialUnits() int {
	return c.initialUnits
}
