package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"freightcore/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentWatchdogJob *ShipmentWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	stalledShipmentsHandler queries.GetStalledShipmentsQueryHandler,
	watchdogSchedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentWatchdogJob: NewShipmentWatchdogJob(stalledShipmentsHandler, watchdogSchedule, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentWatchdogJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentWatchdogJob.Stop()
}
