package jobs

import (
	"fmt"
	"log/slog"

	"pocketmart/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	dailyCounterResetJob *DailyCounterResetJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	resetHandler commands.ResetDailyCountersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyCounterResetJob: NewDailyCounterResetJob(resetHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyCounterResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily counter reset job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyCounterResetJob.Stop()
}
