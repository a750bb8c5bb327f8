package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"vizoshop/internal/adapters/in/http/relay"
	"vizoshop/internal/adapters/out/ledger"
	"vizoshop/internal/adapters/out/partnerapi"
	"vizoshop/internal/core/application/usecases/commands"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/core/ports"
	"vizoshop/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// GatewayRoot wires the delivery partner gateway. With REDIS_ADDR set the
// shipment ledger is shared by every replica; otherwise it lives in memory
// and a purge job keeps it small.
type GatewayRoot struct {
	config  GatewayConfig
	partner *partnerapi.Client
	ledger  ports.ShipmentLedger
	memory  *ledger.MemoryLedger
	redis   redis.UniversalClient
	logger  *slog.Logger
}

func NewGatewayRoot(ctx context.Context, config GatewayConfig, logger *slog.Logger) (*GatewayRoot, error) {
	partner, err := partnerapi.NewClient(config.Partner, nil)
	if err != nil {
		return nil, err
	}

	root := &GatewayRoot{config: config, partner: partner, logger: logger}

	if config.RedisAddr == "" {
		root.memory = ledger.NewMemoryLedger()
		root.ledger = root.memory
		return root, nil
	}

	root.redis = redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{config.RedisAddr}})
	shared := ledger.NewRedisLedger(root.redis)
	if err := shared.Ping(ctx); err != nil {
		_ = root.redis.Close()
		return nil, fmt.Errorf("connect shipment ledger: %w", err)
	}
	root.ledger = shared
	return root, nil
}

func (g *GatewayRoot) CreateRelayShipmentCommandHandler() commands.RelayShipmentCommandHandler {
	return commands.NewRelayShipmentCommandHandler(
		g.partner,
		shipment.NewResolver(region.NewDirectory()),
		g.config.OriginRegion,
		g.ledger,
		g.config.IdempotencyTTL,
		g.logger,
	)
}

// CreateRouter builds the gateway HTTP API.
func (g *GatewayRoot) CreateRouter() (*echo.Echo, error) {
	handler := g.CreateRelayShipmentCommandHandler()
	server, err := relay.NewServer(&handler, g.config.AllowedOrigins, g.logger)
	if err != nil {
		return nil, err
	}
	return relay.NewRouter(server, g.config.PartnerName, g.logger)
}

// CreateJobManager schedules the ledger purge for the in-memory ledger. Redis
// expires keys itself.
func (g *GatewayRoot) CreateJobManager() *jobs.JobManager {
	var purge jobs.Job
	if g.memory != nil {
		purge = jobs.NewLedgerPurgeJob(g.memory, g.config.LedgerPurgeSchedule, g.logger)
	}
	return jobs.NewJobManager(purge)
}

func (g *GatewayRoot) Close() error {
	if g.redis != nil {
		return g.redis.Close()
	}
	return nil
}
