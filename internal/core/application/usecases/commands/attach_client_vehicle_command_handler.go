package commands

import (
	"context"

	"workshop/internal/pkg/errs"
)

// AttachClientVehicleCommandHandler binds a client and optionally a vehicle
// to a work order. Both are verified to exist, and a vehicle registered to a
// different client is rejected. Binding a vehicle to a freshly received
// order moves it into diagnosis.
type AttachClientVehicleCommandHandler struct {
	uowFactory AttachUoWFactory
}

// NewAttachClientVehicleCommandHandler creates a handler for the binding
// operation.
func NewAttachClientVehicleCommandHandler(uowFactory AttachUoWFactory) AttachClientVehicleCommandHandler {
	return AttachClientVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the binding command.
func (h *AttachClientVehicleCommandHandler) Handle(ctx context.Context, cmd AttachClientVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	c, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if err = order.SetClient(c.ID()); err != nil {
		return err
	}

	if cmd.VehicleID() != nil {
		v, vehicleErr := uow.VehicleRepository().Get(ctx, *cmd.VehicleID())
		if vehicleErr != nil {
			return vehicleErr
		}
		if !v.ClientID().IsEqual(c.ID()) {
			return errs.NewBusinessRuleError("vehicle is registered to a different client")
		}
		if err = order.SetVehicle(v.ID()); err != nil {
			return err
		}
	}

	items, err := orderRepo.GetItems(ctx, order.ID())
	if err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, order, items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
