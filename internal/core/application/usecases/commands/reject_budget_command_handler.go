package commands

import (
	"context"
)

// RejectBudgetCommandHandler records a budget rejection, which cancels the
// work order. A canceled order can still be delivered back to the client.
type RejectBudgetCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewRejectBudgetCommandHandler creates a handler for budget rejections.
func NewRejectBudgetCommandHandler(uowFactory WorkOrderUoWFactory) RejectBudgetCommandHandler {
	return RejectBudgetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection. Rejecting an order that is not awaiting
// approval surfaces as a business-rule error from the aggregate.
func (h *RejectBudgetCommandHandler) Handle(ctx context.Context, cmd RejectBudgetCommand) error {
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

	if err = order.RejectBudget(); err != nil {
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
