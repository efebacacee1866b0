package cmd

import (
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.BudgetUoWFactory = FuncBudgetUoWFactory(func() commands.BudgetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	var f commands.BudgetUoWFactory = FuncBudgetUoWFactory(func() commands.BudgetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddLineItemCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachClientVehicleCommandHandler() commands.AttachClientVehicleCommandHandler {
	var f commands.AttachUoWFactory = FuncAttachUoWFactory(func() commands.AttachUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachClientVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveBudgetCommandHandler() commands.ApproveBudgetCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveBudgetCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectBudgetCommandHandler() commands.RejectBudgetCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectBudgetCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveWorkOrderCommandHandler() commands.RemoveWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartCommandHandler() commands.CreatePartCommandHandler {
	var f commands.PartUoWFactory = FuncPartUoWFactory(func() commands.PartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockPartCommandHandler() commands.RestockPartCommandHandler {
	var f commands.PartUoWFactory = FuncPartUoWFactory(func() commands.PartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockPartCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateServiceCommandHandler() commands.CreateServiceCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	var f commands.VehicleUoWFactory = FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderByIDQueryHandler() queries.GetWorkOrderByIDQueryHandler {
	return queries.NewGetWorkOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartsQueryHandler() queries.GetPartsQueryHandler {
	return queries.NewGetPartsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetServicesQueryHandler() queries.GetServicesQueryHandler {
	return queries.NewGetServicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncBudgetUoWFactory func() commands.BudgetUoW

func (f FuncBudgetUoWFactory) Create() commands.BudgetUoW {
	return f()
}

type FuncAttachUoWFactory func() commands.AttachUoW

func (f FuncAttachUoWFactory) Create() commands.AttachUoW {
	return f()
}

type FuncPartUoWFactory func() commands.PartUoW

func (f FuncPartUoWFactory) Create() commands.PartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}
