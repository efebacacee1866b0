package commands

import (
	"context"
)

// ApproveBudgetCommandHandler records a budget approval, which moves the
// work order into execution and starts the execution period.
type ApproveBudgetCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewApproveBudgetCommandHandler creates a handler for budget approvals.
func NewApproveBudgetCommandHandler(uowFactory WorkOrderUoWFactory) ApproveBudgetCommandHandler {
	return ApproveBudgetCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval. Approving an order that is not awaiting
// approval surfaces as a business-rule error from the aggregate.
func (h *ApproveBudgetCommandHandler) Handle(ctx context.Context, cmd ApproveBudgetCommand) error {
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

	if err = order.ApproveBudget(); err != nil {
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
