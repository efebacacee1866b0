package commands

import (
	"context"

	"workshop/internal/core/domain/model/client"
	"workshop/internal/core/domain/model/kernel"
)

// CreateVehicleCommandHandler registers a vehicle for an existing client.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration and returns the new vehicle's
// identifier. The owning client must already be registered.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return kernel.UUID{}, err
	}

	vehicle, err := client.NewVehicle(cmd.ClientID(), cmd.Plate(), cmd.Model(), cmd.Year())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.VehicleRepository().Add(ctx, vehicle); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return vehicle.ID(), nil
}
