package jobs

import (
	"context"
	"log/slog"

	"pocketmart/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DailyCounterResetJob zeroes the per-person daily assignment counters.
// Runs once a day at midnight.
type DailyCounterResetJob struct {
	handler commands.ResetDailyCountersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyCounterResetJob creates the midnight counter-reset job.
func NewDailyCounterResetJob(
	handler commands.ResetDailyCountersCommandHandler,
	logger *slog.Logger,
) *DailyCounterResetJob {
	return &DailyCounterResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_counter_reset_job"),
	}
}

// Start schedules the job to run at midnight every day.
func (j *DailyCounterResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * *", func() {
		ctx := context.Background()
		cmd := commands.NewResetDailyCountersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Daily counter reset failed", "error", err)
			return
		}
		j.logger.InfoContext(ctx, "Daily assignment counters reset")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily counter reset job started (midnight schedule)")
	return nil
}

// Stop stops the job.
func (j *DailyCounterResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily counter reset job stopped")
}
