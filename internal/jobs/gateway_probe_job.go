package jobs

import (
	"context"
	"log/slog"

	"vizoshop/internal/adapters/out/gatewayclient"

	"github.com/robfig/cron/v3"
)

// GatewayProber checks every candidate relay without dispatching anything.
type GatewayProber interface {
	Probe(ctx context.Context) []gatewayclient.ProbeResult
}

// GatewayProbeJob logs the reachability of the gateway relays. It never
// touches orders and never retries a dispatch.
type GatewayProbeJob struct {
	prober   GatewayProber
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewGatewayProbeJob takes a six-field cron spec (seconds first).
func NewGatewayProbeJob(prober GatewayProber, schedule string, logger *slog.Logger) *GatewayProbeJob {
	return &GatewayProbeJob{
		prober:   prober,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "gateway_probe_job"),
	}
}

func (j *GatewayProbeJob) Name() string {
	return "gateway probe job"
}

func (j *GatewayProbeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Gateway probe job started", "schedule", j.schedule)
	return nil
}

// Run probes once and returns how many relays answered.
func (j *GatewayProbeJob) Run(ctx context.Context) int {
	results := j.prober.Probe(ctx)

	reachable := 0
	for _, r := range results {
		if r.Reachable {
			reachable++
			j.logger.InfoContext(ctx, "Gateway reachable",
				"endpoint", r.Endpoint.URL, "latency", r.Latency)
			continue
		}
		j.logger.WarnContext(ctx, "Gateway unreachable",
			"endpoint", r.Endpoint.URL, "status", r.Status, "error", r.Err)
	}

	if len(results) > 0 && reachable == 0 {
		j.logger.ErrorContext(ctx, "No gateway reachable, new orders will need manual shipment",
			"candidates", len(results))
	}
	return reachable
}

func (j *GatewayProbeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Gateway probe job stopped")
}
