package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand represents a request to move a work order to
// another lifecycle status. Whether the edge is allowed is decided by the
// aggregate, not the command.
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a command for a status change.
func NewChangeWorkOrderStatusCommand(
	orderID kernel.UUID, target workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return ChangeWorkOrderStatusCommand{
		orderID: orderID,
		target:  target,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// OrderID returns the work order to transition.
func (c ChangeWorkOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeWorkOrderStatusCommand) Target() workorder.Status {
	return c.target
}
