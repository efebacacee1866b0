package commands

import (
	"context"

	"workshop/internal/pkg/errs"
)

// RemoveWorkOrderCommandHandler removes a work order with its line items.
// Removal is only allowed while the order is still Received or once it is
// concluded; removing an order mid-flow would orphan the stock its items
// already depleted.
type RemoveWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRemoveWorkOrderCommandHandler creates a handler for work-order removal.
func NewRemoveWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) RemoveWorkOrderCommandHandler {
	return RemoveWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveWorkOrderCommandHandler) Handle(ctx context.Context, cmd RemoveWorkOrderCommand) error {
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

	status := order.Status()
	if !status.IsReceived() && !status.IsConcluded() {
		return errs.NewBusinessRuleError("work order can only be removed before work starts or after it concludes")
	}

	if err = orderRepo.Delete(ctx, order.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
