// Package jobs provides scheduled background tasks for the freight portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the operations portal.
//
// # Available Jobs
//
// 1. ShipmentWatchdogJob - Periodically flags active shipments whose status
// has not changed for longer than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalledHandler, "0 */10 * * * *", 48*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watchdog schedule is a six-field cron expression (seconds included) and
// comes from configuration together with the staleness threshold. The default
// runs every ten minutes.
//
// # Error Handling
//
// - Watchdog runs log query failures and skip the run; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
