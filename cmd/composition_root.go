package cmd

import (
	"log/slog"
	"net/http"

	httpin "vizoshop/internal/adapters/in/http"
	"vizoshop/internal/adapters/in/http/middleware"
	"vizoshop/internal/adapters/out/gatewayclient"
	"vizoshop/internal/adapters/out/postgres"
	"vizoshop/internal/adapters/out/postgres/catalogrepo"
	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/application/usecases/queries"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/domain/services"
	"vizoshop/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires the storefront.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	directory  region.Directory
	tariffs    region.TariffTable
	dispatcher *gatewayclient.FallbackDispatcher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  region.NewDirectory(),
		tariffs:    region.NewTariffTable(),
		dispatcher: gatewayclient.NewFallbackDispatcher(config.GatewayEndpoints, &http.Client{}, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	builder := shipment.NewBuilder(shipment.NewResolver(c.directory), c.config.OriginRegion)
	return commands.NewSubmitOrderCommandHandler(
		f,
		catalogrepo.NewGormCatalogRepository(c.gormDB),
		services.NewOrderValidator(),
		c.calculator(),
		builder,
		c.dispatcher,
		c.logger,
	)
}

func (c *CompositionRoot) CreateListOwnerOrdersQueryHandler() queries.ListOwnerOrdersQueryHandler {
	return queries.NewListOwnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRegionsQueryHandler() queries.ListRegionsQueryHandler {
	return queries.NewListRegionsQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateGetSubRegionsQueryHandler() queries.GetSubRegionsQueryHandler {
	return queries.NewGetSubRegionsQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateQuoteShippingFeeQueryHandler() queries.QuoteShippingFeeQueryHandler {
	return queries.NewQuoteShippingFeeQueryHandler(c.calculator())
}

// CreateRouter builds the storefront HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	submit := c.CreateSubmitOrderCommandHandler()
	server := httpin.NewServer(
		&submit,
		c.CreateListOwnerOrdersQueryHandler(),
		c.CreateListRegionsQueryHandler(),
		c.CreateGetSubRegionsQueryHandler(),
		c.CreateQuoteShippingFeeQueryHandler(),
	)
	return httpin.NewRouter(server, middleware.NewSessionVerifier(c.config.JWTSecret), c.logger)
}

// CreateJobManager schedules the gateway probe when a schedule is set.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var probe jobs.Job
	if c.config.ProbeSchedule != "" {
		probe = jobs.NewGatewayProbeJob(c.dispatcher, c.config.ProbeSchedule, c.logger)
	}
	return jobs.NewJobManager(probe)
}

func (c *CompositionRoot) calculator() services.ShippingCostCalculator {
	return services.NewShippingCostCalculator(c.tariffs)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
