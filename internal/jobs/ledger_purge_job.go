package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// LedgerPurger drops expired idempotency keys.
type LedgerPurger interface {
	Purge(ctx context.Context) (int, error)
}

// LedgerPurgeJob keeps the in-memory shipment ledger of a single gateway
// replica from growing without bound.
type LedgerPurgeJob struct {
	ledger   LedgerPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLedgerPurgeJob(ledger LedgerPurger, schedule string, logger *slog.Logger) *LedgerPurgeJob {
	return &LedgerPurgeJob{
		ledger:   ledger,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ledger_purge_job"),
	}
}

func (j *LedgerPurgeJob) Name() string {
	return "ledger purge job"
}

func (j *LedgerPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger purge job started", "schedule", j.schedule)
	return nil
}

// Run purges once.
func (j *LedgerPurgeJob) Run(ctx context.Context) (int, error) {
	purged, err := j.ledger.Purge(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Ledger purge failed", "error", err)
		return 0, err
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired idempotency keys purged", "count", purged)
	}
	return purged, nil
}

func (j *LedgerPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Ledger purge job stopped")
}
