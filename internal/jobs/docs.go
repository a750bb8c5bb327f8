// Package jobs provides scheduled background tasks for the storefront and
// the gateway.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs here are diagnostics and housekeeping only: none of them retries an
// order or a shipment.
//
// # Available Jobs
//
// 1. GatewayProbeJob - storefront; calls the health route of every candidate gateway relay and logs reachability
// 2. LedgerPurgeJob - gateway; drops expired keys from the in-memory shipment ledger
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewGatewayProbeJob(dispatcher, "0 */5 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron specs with a leading seconds field, read from
// configuration. An empty schedule disables the job at composition time.
//
// # Error Handling
//
// - Probe failures are logged per relay; no relay reachable is logged at Error
// - Purge failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
