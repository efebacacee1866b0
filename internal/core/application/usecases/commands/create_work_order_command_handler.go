package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"
)

// CreateWorkOrderCommandHandler handles the business logic for opening a
// work order. Catalog prices are snapshotted into line items and part stock
// is depleted inside the same transaction that persists the order, so a
// budget can never reference units the shop no longer holds.
type CreateWorkOrderCommandHandler struct {
	uowFactory BudgetUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
// Requires a BudgetUoWFactory for transactional persistence across the
// order, part and catalog aggregates.
func NewCreateWorkOrderCommandHandler(uowFactory BudgetUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work-order creation command and returns the new
// order's identifier. Pricing the requested items sets the budget total,
// which moves a diagnosable order straight to awaiting approval.
func (h *CreateWorkOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateWorkOrderCommand,
) (kernel.UUID, error) {
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

	order, err := workorder.NewWorkOrder(cmd.ClientID(), cmd.VehicleID())
	if err != nil {
		return kernel.UUID{}, err
	}

	items, total, err := h.priceItems(ctx, uow, order, cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = order.UpdateTotal(total); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.WorkOrderRepository().Add(ctx, order, items); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return order.ID(), nil
}

// priceItems builds the line items for the requested services and parts,
// snapshotting unit prices and depleting part stock as it goes.
func (h *CreateWorkOrderCommandHandler) priceItems(
	ctx context.Context,
	uow BudgetUoW,
	order *workorder.WorkOrder,
	cmd CreateWorkOrderCommand,
) ([]*workorder.LineItem, kernel.Price, error) {
	items := make([]*workorder.LineItem, 0, len(cmd.ServiceItems())+len(cmd.PartItems()))
	total := kernel.ZeroPrice()

	catalogRepo := uow.CatalogRepository()
	for _, requested := range cmd.ServiceItems() {
		svc, err := catalogRepo.Get(ctx, requested.ReferencedID())
		if err != nil {
			return nil, kernel.Price{}, err
		}

		item, err := workorder.NewLineItem(
			order.ID(), workorder.KindService, svc.ID(), requested.Quantity(), svc.Price(),
		)
		if err != nil {
			return nil, kernel.Price{}, err
		}

		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	partRepo := uow.PartRepository()
	for _, requested := range cmd.PartItems() {
		item, err := takeFromStock(ctx, partRepo, order.ID(), requested)
		if err != nil {
			return nil, kernel.Price{}, err
		}

		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	return items, total, nil
}

// takeFromStock depletes the shelf for one requested part line and returns
// the priced line item. The depleted part is persisted within the caller's
// transaction.
func takeFromStock(
	ctx context.Context,
	partRepo ports.PartRepository,
	orderID kernel.UUID,
	requested BudgetItem,
) (*workorder.LineItem, error) {
	p, err := partRepo.Get(ctx, requested.ReferencedID())
	if err != nil {
		return nil, err
	}

	if err = p.Deplete(requested.Quantity()); err != nil {
		return nil, err
	}

	item, err := workorder.NewLineItem(
		orderID, workorder.KindPart, p.ID(), requested.Quantity(), p.Price(),
	)
	if err != nil {
		return nil, err
	}

	if err = partRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return item, nil
}
