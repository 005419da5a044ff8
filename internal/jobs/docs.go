// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. PendingReminderJob - Runs every minute to re-notify the approver channel
// about orders that have been waiting in pending longer than the configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, notifier, reminderAge, logger)
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
// The reminder job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. Reminders are advisory, so minute granularity is
// plenty.
//
// # Error Handling
//
// - Individual notification failures are logged and do not abort the pass
// - A failed pass is logged; the next tick retries from scratch
package jobs
