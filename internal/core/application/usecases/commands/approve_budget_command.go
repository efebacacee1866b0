package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrApproveBudgetCommandIsNotConstructed = errors.New(
	"ApproveBudgetCommand must be created via NewApproveBudgetCommand constructor",
)

// ApproveBudgetCommand represents the client's approval of a work-order
// budget.
type ApproveBudgetCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveBudgetCommand creates a command approving the budget of the
// given work order.
func NewApproveBudgetCommand(orderID kernel.UUID) (ApproveBudgetCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApproveBudgetCommand{}, err
	}

	return ApproveBudgetCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveBudgetCommand) Validate() error {
	return c.guard.Validate(ErrApproveBudgetCommandIsNotConstructed)
}

// OrderID returns the work order whose budget is approved.
func (c ApproveBudgetCommand) OrderID() kernel.UUID {
	return c.orderID
}
