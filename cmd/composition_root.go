package cmd

import (
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/pricing"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     pricing.Policy
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     configs.PricingPolicy,
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerOrderUoWFactory = FuncCustomerOrderUoWFactory(func() commands.CustomerOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateAddSpoolCommandHandler() commands.AddSpoolCommandHandler {
	var f commands.SpoolUoWFactory = FuncSpoolUoWFactory(func() commands.SpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddSpoolCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockSpoolCommandHandler() commands.RestockSpoolCommandHandler {
	var f commands.SpoolUoWFactory = FuncSpoolUoWFactory(func() commands.SpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockSpoolCommandHandler(f)
}

func (c *CompositionRoot) CreateArchiveSpoolCommandHandler() commands.ArchiveSpoolCommandHandler {
	var f commands.SpoolWasteUoWFactory = FuncSpoolWasteUoWFactory(func() commands.SpoolWasteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveSpoolCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPrinterCommandHandler() commands.RegisterPrinterCommandHandler {
	var f commands.PrinterUoWFactory = FuncPrinterUoWFactory(func() commands.PrinterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPrinterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderSpoolUoWFactory = FuncOrderSpoolUoWFactory(func() commands.OrderSpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	var f commands.OrderSpoolUoWFactory = FuncOrderSpoolUoWFactory(func() commands.OrderSpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderSpoolUoWFactory = FuncOrderSpoolUoWFactory(func() commands.OrderSpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderPrinterUoWFactory = FuncOrderPrinterUoWFactory(func() commands.OrderPrinterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderSpoolUoWFactory = FuncOrderSpoolUoWFactory(func() commands.OrderSpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderSpoolUoWFactory = FuncOrderSpoolUoWFactory(func() commands.OrderSpoolUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderTotalsQueryHandler() queries.GetOrderTotalsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderTotalsQueryHandler(
		uow.OrderRepository(),
		uow.SpoolRepository(),
		c.policy,
	)
}

func (c *CompositionRoot) CreateGetLowSpoolsQueryHandler() queries.GetLowSpoolsQueryHandler {
	return queries.NewGetLowSpoolsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB, c.policy)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCustomerOrderUoWFactory func() commands.CustomerOrderUoW

func (f FuncCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	return f()
}

type FuncSpoolUoWFactory func() commands.SpoolUoW

func (f FuncSpoolUoWFactory) Create() commands.SpoolUoW {
	return f()
}

type FuncSpoolWasteUoWFactory func() commands.SpoolWasteUoW

func (f FuncSpoolWasteUoWFactory) Create() commands.SpoolWasteUoW {
	return f()
}

type FuncPrinterUoWFactory func() commands.PrinterUoW

func (f FuncPrinterUoWFactory) Create() commands.PrinterUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderSpoolUoWFactory func() commands.OrderSpoolUoW

func (f FuncOrderSpoolUoWFactory) Create() commands.OrderSpoolUoW {
	return f()
}

type FuncOrderPrinterUoWFactory func() commands.OrderPrinterUoW

func (f FuncOrderPrinterUoWFactory) Create() commands.OrderPrinterUoW {
	return f()
}
