package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAttachClientVehicleCommandIsNotConstructed = errors.New(
	"AttachClientVehicleCommand must be created via NewAttachClientVehicleCommand constructor",
)

// AttachClientVehicleCommand represents a request to bind a client, and
// optionally one of their vehicles, to an existing work order.
type AttachClientVehicleCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	clientID  kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachClientVehicleCommand creates a command to bind a client and
// vehicle to a work order. The vehicle is optional.
func NewAttachClientVehicleCommand(
	orderID, clientID kernel.UUID, vehicleID *kernel.UUID,
) (AttachClientVehicleCommand, error) {
	cmd := AttachClientVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), clientID.Validate()); err != nil {
		return AttachClientVehicleCommand{}, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return AttachClientVehicleCommand{}, err
		}
	}

	cmd.orderID = orderID
	cmd.clientID = clientID
	cmd.vehicleID = vehicleID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachClientVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAttachClientVehicleCommandIsNotConstructed)
}

// OrderID returns the work order to bind to.
func (c AttachClientVehicleCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the client to bind.
func (c AttachClientVehicleCommand) ClientID() kernel.UUID {
	return c.clientID
}

// VehicleID returns the vehicle to bind, or nil.
func (c AttachClientVehicleCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}
