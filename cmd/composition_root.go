package cmd

import (
	"log/slog"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gasdelivery/internal/adapters/in/http"
	"gasdelivery/internal/adapters/out/amqp"
	"gasdelivery/internal/adapters/out/identity"
	"gasdelivery/internal/adapters/out/postgres"
	"gasdelivery/internal/adapters/out/postgres/actorrepo"
	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
	"gasdelivery/internal/jobs"
	"gasdelivery/internal/notifications"
	"gasdelivery/internal/pkg/keyedlock"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    product.Catalog
	locker     *keyedlock.KeyedLock
	registry   *notifications.Registry
	notifier   *notifications.Notifier
	publisher  *amqp.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher *amqp.Publisher, logger *slog.Logger) CompositionRoot {
	registry := notifications.NewRegistry(notifications.DefaultBuffer)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    product.DefaultCatalog(),
		locker:     keyedlock.NewKeyedLock(keyedlock.DefaultWait),
		registry:   registry,
		notifier:   notifications.NewNotifier(registry, publisher, logger),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewAuthorizationGuard(), c.catalog, c.notifier)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOrderCommandHandler(f, services.NewAuthorizationGuard(), c.locker, c.catalog, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, services.NewAuthorizationGuard(), c.locker, c.catalog, c.notifier)
}

func (c *CompositionRoot) CreateRegisterActorCommandHandler() commands.RegisterActorCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterActorCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.ActorUoWFactory = FuncActorUoWFactory(func() commands.ActorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetOrdersByOwnerQueryHandler() queries.GetOrdersByOwnerQueryHandler {
	return queries.NewGetOrdersByOwnerQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB, c.catalog)
}

func (c *CompositionRoot) CreateGetDeliveryPersonnelQueryHandler() queries.GetDeliveryPersonnelQueryHandler {
	return queries.NewGetDeliveryPersonnelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIdentityProvider() (*identity.Provider, error) {
	return identity.NewProvider(actorrepo.NewGormActorRepository(c.gormDB))
}

func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	provider, err := c.CreateIdentityProvider()
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateRegisterActorCommandHandler(),
		c.CreateUpdateProfileCommandHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetOrdersByOwnerQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
		c.CreateGetDeliveryPersonnelQueryHandler(),
		c.registry,
		provider,
		c.catalog,
	), nil
}

func (c *CompositionRoot) CreateJobManager(listener *pq.Listener) *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.publisher, listener, c.config.OutboxRetentionDays, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncActorUoWFactory func() commands.ActorUoW

func (f FuncActorUoWFactory) Create() commands.ActorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
