package jobs

import (
	"context"
	"log/slog"
	"time"

	"cargo/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FlightDepartureJob periodically advances Accepted orders whose flight has
// already departed to the OnTheWay status.
type FlightDepartureJob struct {
	handler commands.AdvanceDepartedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFlightDepartureJob creates the scheduled sweep over departed flights.
func NewFlightDepartureJob(
	handler commands.AdvanceDepartedOrdersCommandHandler,
	logger *slog.Logger,
) *FlightDepartureJob {
	return &FlightDepartureJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "flight_departure_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *FlightDepartureJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewAdvanceDepartedOrdersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Flight departure sweep misconfigured", "error", err)
			return
		}

		moved, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Flight departure sweep failed", "error", err)
			return
		}

		if moved > 0 {
			j.logger.InfoContext(ctx, "Advanced orders on departed flights", "count", moved)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Flight departure job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *FlightDepartureJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Flight departure job stopped")
}
