package commands

import (
	"context"
)

// RestockPartCommandHandler adds delivered units to a part's shelf.
type RestockPartCommandHandler struct {
	uowFactory PartUoWFactory
}

// NewRestockPartCommandHandler creates a handler for restocking parts.
func NewRestockPartCommandHandler(uowFactory PartUoWFactory) RestockPartCommandHandler {
	return RestockPartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
func (h *RestockPartCommandHandler) Handle(ctx context.Context, cmd RestockPartCommand) error {
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

	partRepo := uow.PartRepository()
	p, err := partRepo.Get(ctx, cmd.PartID())
	if err != nil {
		return err
	}

	if err = p.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = partRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
