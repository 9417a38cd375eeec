package cmd

import (
	"time"

	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/adapters/out/postgres/zonerepo"
	"orderintake/internal/core/application/usecases/commands"
	"orderintake/internal/core/application/usecases/queries"
	"orderintake/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.OrderValidator
	resolver   services.ZoneResolver
	txTimeout  time.Duration
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	hours, err := services.NewBusinessHours(
		configs.BusinessOpenHour,
		configs.BusinessCloseHour,
		configs.BusinessClosedDays,
		configs.BusinessTimezone,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	var opts []services.OrderValidatorOption
	if configs.SkipBusinessHours {
		opts = append(opts, services.WithBusinessHoursSkipped())
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  services.NewOrderValidator(hours, opts...),
		resolver:   services.NewZoneResolver(),
		txTimeout:  configs.TxTimeout,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		zonerepo.NewGormZoneRepository(c.gormDB),
		c.validator,
		c.resolver,
		commands.WithTransactionTimeout(c.txTimeout),
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, commands.WithTransactionTimeout(c.txTimeout))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveZonesQueryHandler() queries.GetActiveZonesQueryHandler {
	return queries.NewGetActiveZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersQueryHandler() queries.CountOrdersQueryHandler {
	return queries.NewCountOrdersQueryHandler(c.gormDB)
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
