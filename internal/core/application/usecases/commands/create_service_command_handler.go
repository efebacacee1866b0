package commands

import (
	"context"

	"workshop/internal/core/domain/model/catalog"
	"workshop/internal/core/domain/model/kernel"
)

// CreateServiceCommandHandler adds a service to the catalog.
type CreateServiceCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateServiceCommandHandler creates a handler for catalog additions.
func NewCreateServiceCommandHandler(uowFactory CatalogUoWFactory) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new service's identifier.
func (h *CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	service, err := catalog.NewService(cmd.Name(), cmd.Price())
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

	if err = uow.CatalogRepository().Add(ctx, service); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return service.ID(), nil
}
