package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand represents a request to add one budgeted line to a
// work order that is still in diagnosis.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	kind         workorder.ItemKind
	referencedID kernel.UUID
	quantity     kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a line item.
func NewAddLineItemCommand(
	orderID kernel.UUID,
	kind workorder.ItemKind,
	referencedID kernel.UUID,
	quantity kernel.Quantity,
) (AddLineItemCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		kind.Validate(),
		referencedID.Validate(),
		quantity.Validate(),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return AddLineItemCommand{
		orderID:      orderID,
		kind:         kind,
		referencedID: referencedID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the work order receiving the item.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Kind returns whether the item bills a service or a part.
func (c AddLineItemCommand) Kind() workorder.ItemKind {
	return c.kind
}

// ReferencedID returns the catalog service or part being billed.
func (c AddLineItemCommand) ReferencedID() kernel.UUID {
	return c.referencedID
}

// Quantity returns how many units to bill.
func (c AddLineItemCommand) Quantity() kernel.Quantity {
	return c.quantity
}
