package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightcore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ShipmentWatchdogJob periodically scans active bookings for records whose
// status has not changed for too long and reports them. The job is read-only;
// it only surfaces stuck shipments for the ops team to act on.
type ShipmentWatchdogJob struct {
	handler    queries.GetStalledShipmentsQueryHandler
	cron       *cron.Cron
	logger     *slog.Logger
	schedule   string
	staleAfter time.Duration
}

// NewShipmentWatchdogJob creates a watchdog that runs on the given cron
// schedule and flags operational shipments untouched for longer than
// staleAfter.
func NewShipmentWatchdogJob(
	handler queries.GetStalledShipmentsQueryHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *ShipmentWatchdogJob {
	return &ShipmentWatchdogJob{
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "shipment_watchdog_job"),
		schedule:   schedule,
		staleAfter: staleAfter,
	}
}

// Start begins the watchdog on its configured schedule.
func (j *ShipmentWatchdogJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.staleAfter)

		query, queryErr := queries.NewGetStalledShipmentsQuery(cutoff)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Shipment watchdog failed to build query", "error", queryErr)
			return
		}

		stalled, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Shipment watchdog run failed", "error", handleErr)
			return
		}

		for _, row := range stalled {
			j.logger.WarnContext(ctx, "Shipment appears stalled",
				"reference", row.Reference,
				"status", row.Status,
				"lastChange", row.UpdatedAt,
			)
		}

		if len(stalled) > 0 {
			j.logger.InfoContext(ctx, "Shipment watchdog completed", "stalled", len(stalled))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment watchdog started",
		"schedule", j.schedule, "staleAfter", j.staleAfter)
	return nil
}

// Stop stops the watchdog.
func (j *ShipmentWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment watchdog stopped")
}
