package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrBudgetItemIsNotConstructed = errors.New(
		"BudgetItem must be created via NewBudgetItem constructor",
	)
)

// BudgetItem is one requested line of a new work order: a catalog service or
// a stocked part and how many units of it.
type BudgetItem struct {
	referencedID kernel.UUID
	quantity     kernel.Quantity

	guard guard.ConstructorGuard
}

// NewBudgetItem creates a budget item request.
// Validates that the referenced id and the quantity are valid.
func NewBudgetItem(referencedID kernel.UUID, quantity kernel.Quantity) (BudgetItem, error) {
	if err := errors.Join(referencedID.Validate(), quantity.Validate()); err != nil {
		return BudgetItem{}, err
	}

	return BudgetItem{
		referencedID: referencedID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (b BudgetItem) Validate() error {
	return b.guard.Validate(ErrBudgetItemIsNotConstructed)
}

// ReferencedID returns the catalog service or part being requested.
func (b BudgetItem) ReferencedID() kernel.UUID {
	return b.referencedID
}

// Quantity returns how many units are requested.
func (b BudgetItem) Quantity() kernel.Quantity {
	return b.quantity
}

// CreateWorkOrderCommand represents a request to open a new work order,
// optionally bound to a client and vehicle and optionally pre-budgeted with
// service and part items.
//
// Example:
//
//	cmd, err := NewCreateWorkOrderCommand(&clientID, &vehicleID, serviceItems, partItems)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	clientID     *kernel.UUID
	vehicleID    *kernel.UUID
	serviceItems []BudgetItem
	partItems    []BudgetItem

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to open a work order.
// Client and vehicle are optional; every provided id and item is validated.
func NewCreateWorkOrderCommand(
	clientID, vehicleID *kernel.UUID,
	serviceItems, partItems []BudgetItem,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParticipants(clientID, vehicleID),
		cmd.setServiceItems(serviceItems),
		cmd.setPartItems(partItems),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// ClientID returns the client to bind, or nil.
func (c CreateWorkOrderCommand) ClientID() *kernel.UUID {
	return c.clientID
}

// VehicleID returns the vehicle to bind, or nil.
func (c CreateWorkOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// ServiceItems returns the requested catalog service lines.
func (c CreateWorkOrderCommand) ServiceItems() []BudgetItem {
	return c.serviceItems
}

// PartItems returns the requested part lines.
func (c CreateWorkOrderCommand) PartItems() []BudgetItem {
	return c.partItems
}

func (c *CreateWorkOrderCommand) setParticipants(clientID, vehicleID *kernel.UUID) error {
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return err
		}
		c.clientID = clientID
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
		c.vehicleID = vehicleID
	}
	return nil
}

func (c *CreateWorkOrderCommand) setServiceItems(items []BudgetItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.serviceItems = items
	return nil
}

func (c *CreateWorkOrderCommand) setPartItems(items []BudgetItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.partItems = items
	return nil
}
