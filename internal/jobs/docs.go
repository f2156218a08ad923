// Package jobs provides scheduled background tasks for the delivery
// system, implemented with github.com/robfig/cron/v3.
//
// The only job today is DailyCounterResetJob, which zeroes every delivery
// person's order_count_today at midnight so the counter always reflects
// assignments made during the current day.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(resetHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
