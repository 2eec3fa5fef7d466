// Package jobs provides cron-based background tasks built on
// github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"cargo/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	flightDepartureJob *FlightDepartureJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	advanceDepartedHandler commands.AdvanceDepartedOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		flightDepartureJob: NewFlightDepartureJob(advanceDepartedHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.flightDepartureJob.Start(); err != nil {
		return fmt.Errorf("failed to start flight departure job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.flightDepartureJob.Stop()
}
