package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/pkg/errs"
)

// AddLineItemCommandHandler adds a budgeted line to a work order in
// diagnosis. The unit price is snapshotted from the catalog or part at the
// moment of the call, part stock is depleted, and the order total is
// recomputed from all items. A positive total submits the budget for
// approval.
type AddLineItemCommandHandler struct {
	uowFactory BudgetUoWFactory
}

// NewAddLineItemCommandHandler creates a handler for adding line items.
func NewAddLineItemCommandHandler(uowFactory BudgetUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-line-item command.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
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
	if !order.Status().CanAddItems() {
		return errs.NewBusinessRuleError("items can only be added while the order is in diagnosis")
	}

	item, err := h.buildItem(ctx, uow, order.ID(), cmd)
	if err != nil {
		return err
	}

	items, err := orderRepo.GetItems(ctx, order.ID())
	if err != nil {
		return err
	}
	items = append(items, item)

	total := kernel.ZeroPrice()
	for _, existing := range items {
		total = total.Add(existing.Subtotal())
	}
	if err = order.UpdateTotal(total); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order, items); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildItem snapshots the unit price for the requested line, depleting part
// stock when the line bills a part.
func (h *AddLineItemCommandHandler) buildItem(
	ctx context.Context,
	uow BudgetUoW,
	orderID kernel.UUID,
	cmd AddLineItemCommand,
) (*workorder.LineItem, error) {
	requested, err := NewBudgetItem(cmd.ReferencedID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if cmd.Kind() == workorder.KindPart {
		return takeFromStock(ctx, uow.PartRepository(), orderID, requested)
	}

	svc, err := uow.CatalogRepository().Get(ctx, cmd.ReferencedID())
	if err != nil {
		return nil, err
	}
	return workorder.NewLineItem(orderID, workorder.KindService, svc.ID(), cmd.Quantity(), svc.Price())
}
