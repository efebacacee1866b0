package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRejectBudgetCommandIsNotConstructed = errors.New(
	"RejectBudgetCommand must be created via NewRejectBudgetCommand constructor",
)

// RejectBudgetCommand represents the client's rejection of a work-order
// budget.
type RejectBudgetCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBudgetCommand creates a command rejecting the budget of the
// given work order.
func NewRejectBudgetCommand(orderID kernel.UUID) (RejectBudgetCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectBudgetCommand{}, err
	}

	return RejectBudgetCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBudgetCommand) Validate() error {
	return c.guard.Validate(ErrRejectBudgetCommandIsNotConstructed)
}

// OrderID returns the work order whose budget is rejected.
func (c RejectBudgetCommand) OrderID() kernel.UUID {
	return c.orderID
}
