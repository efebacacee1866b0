package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a vehicle for a
// client.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	plate    string
	model    string
	year     int

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a vehicle registration command. Plate,
// model and year bounds are enforced by the aggregate.
func NewCreateVehicleCommand(clientID kernel.UUID, plate, model string, year int) (CreateVehicleCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		clientID: clientID,
		plate:    plate,
		model:    model,
		year:     year,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// ClientID returns the owning client.
func (c CreateVehicleCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Plate returns the license plate.
func (c CreateVehicleCommand) Plate() string {
	return c.plate
}

// Model returns the vehicle model description.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Year returns the model year.
func (c CreateVehicleCommand) Year() int {
	return c.year
}
