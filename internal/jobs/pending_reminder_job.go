package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// reminderScanLimit bounds how many pending orders one reminder pass inspects.
const reminderScanLimit = 50

// PendingReminderJob periodically re-alerts the approver channel about orders
// stuck in pending. An order submitted but never approved or rejected is
// revenue waiting on a human; the reminder keeps it visible.
type PendingReminderJob struct {
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.Notifier
	maxAge     time.Duration
	cron       *cron.Cron
	logger     *zap.Logger
}

// NewPendingReminderJob creates a job that re-notifies the approver about
// orders pending longer than maxAge. Runs once a minute.
func NewPendingReminderJob(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.Notifier,
	maxAge time.Duration,
	logger *zap.Logger,
) *PendingReminderJob {
	return &PendingReminderJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		maxAge:     maxAge,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(zap.String("component", "pending_reminder_job")),
	}
}

// Start schedules the reminder pass to run at the top of every minute.
func (j *PendingReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		if err := j.run(context.Background()); err != nil {
			j.logger.Error("pending reminder pass failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("pending reminder job started (running every minute)")
	return nil
}

// Stop stops the reminder job.
func (j *PendingReminderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("pending reminder job stopped")
}

// run executes one reminder pass. Reads run outside a transaction; the pass
// only reads and notifies, it never mutates order state.
func (j *PendingReminderJob) run(ctx context.Context) error {
	pending := order.Pending
	repo := j.uowFactory.Create().OrderRepository()

	orders, err := repo.List(ctx, ports.ListFilter{Limit: reminderScanLimit, Status: &pending})
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.maxAge)
	for _, stale := range orders {
		if stale.CreatedAt().After(cutoff) {
			continue
		}

		notification := ports.StatusNotification{
			OrderID:     stale.ID(),
			OrderNumber: stale.Number(),
			AccountID:   stale.AccountID(),
			Status:      stale.Status(),
			StatusLabel: stale.Status().Label(),
			Template:    "order_pending_reminder",
		}
		if err := j.notifier.NotifyApprover(ctx, notification); err != nil {
			j.logger.Warn("reminder notification failed",
				zap.String("order_number", stale.Number()),
				zap.Error(err))
		}
	}

	return nil
}
