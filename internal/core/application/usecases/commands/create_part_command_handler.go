package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/part"
)

// CreatePartCommandHandler lists a new part in stock.
type CreatePartCommandHandler struct {
	uowFactory PartUoWFactory
}

// NewCreatePartCommandHandler creates a handler for listing parts.
func NewCreatePartCommandHandler(uowFactory PartUoWFactory) CreatePartCommandHandler {
	return CreatePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command and returns the new part's
// identifier.
func (h *CreatePartCommandHandler) Handle(ctx context.Context, cmd CreatePartCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	stock, err := part.NewStock(cmd.InitialUnits())
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := part.NewPart(cmd.Name(), cmd.Code(), cmd.Price(), stock)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartRepository().Add(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}
