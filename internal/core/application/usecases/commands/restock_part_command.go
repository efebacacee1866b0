package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRestockPartCommandIsNotConstructed = errors.New(
	"RestockPartCommand must be created via NewRestockPartCommand constructor",
)

// RestockPartCommand represents a delivery of units for an existing part.
type RestockPartCommand struct { //nolint:recvcheck //using for validation
	partID   kernel.UUID
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewRestockPartCommand creates a command adding units to a part's shelf.
func NewRestockPartCommand(partID kernel.UUID, quantity kernel.Quantity) (RestockPartCommand, error) {
	if err := errors.Join(partID.Validate(), quantity.Validate()); err != nil {
		return RestockPartCommand{}, err
	}

	return RestockPartCommand{
		partID:   partID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockPartCommand) Validate() error {
	return c.guard.Validate(ErrRestockPartCommandIsNotConstructed)
}

// PartID returns the part receiving units.
func (c RestockPartCommand) PartID() kernel.UUID {
	return c.partID
}

// Quantity returns how many units arrived.
func (c RestockPartCommand) Quantity() kernel.Quantity {
	return c.quantity
}
