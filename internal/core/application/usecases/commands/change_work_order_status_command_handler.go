package commands

import (
	"context"
)

// ChangeWorkOrderStatusCommandHandler performs a requested lifecycle
// transition on a work order.
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for status
// changes.
func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status-change command. An edge outside the lifecycle
// surfaces as an invalid-transition error from the aggregate.
func (h *ChangeWorkOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeWorkOrderStatusCommand) error {
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

	if err = order.ChangeStatus(cmd.Target()); err != nil {
		return err
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
