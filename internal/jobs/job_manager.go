package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"ordering/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingReminderJob *PendingReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.Notifier,
	pendingReminderAge time.Duration,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		pendingReminderJob: NewPendingReminderJob(uowFactory, notifier, pendingReminderAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingReminderJob.Stop()
}
