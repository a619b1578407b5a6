package cmd

import (
	"medship/internal/adapters/out/postgres"
	"medship/internal/core/application/usecases/commands"
	"medship/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterTransporterCommandHandler() commands.RegisterTransporterCommandHandler {
	var f commands.TransporterUoWFactory = FuncTransporterUoWFactory(func() commands.TransporterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTransporterCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCargoBayCommandHandler() commands.AddCargoBayCommandHandler {
	var f commands.TransporterUoWFactory = FuncTransporterUoWFactory(func() commands.TransporterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCargoBayCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchShipmentCommandHandler() commands.DispatchShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceShipmentsCommandHandler() commands.AdvanceShipmentsCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllTransportersQueryHandler() queries.GetAllTransportersQueryHandler {
	return queries.NewGetAllTransportersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUndeliveredShipmentsQueryHandler() queries.GetUndeliveredShipmentsQueryHandler {
	return queries.NewGetUndeliveredShipmentsQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncTransporterUoWFactory func() commands.TransporterUoW

func (f FuncTransporterUoWFactory) Create() commands.TransporterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
