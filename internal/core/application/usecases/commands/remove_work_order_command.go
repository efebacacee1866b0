package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRemoveWorkOrderCommandIsNotConstructed = errors.New(
	"RemoveWorkOrderCommand must be created via NewRemoveWorkOrderCommand constructor",
)

// RemoveWorkOrderCommand represents a request to remove a work order and
// its line items.
type RemoveWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveWorkOrderCommand creates a command removing the given work order.
func NewRemoveWorkOrderCommand(orderID kernel.UUID) (RemoveWorkOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveWorkOrderCommand{}, err
	}

	return RemoveWorkOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWorkOrderCommandIsNotConstructed)
}

// OrderID returns the work order to remove.
func (c RemoveWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
