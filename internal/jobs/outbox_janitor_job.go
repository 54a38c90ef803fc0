package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"gasdelivery/internal/core/application/usecases/commands"
)

// OutboxJanitorJob removes published outbox rows once they are old enough
// that no consumer will resynchronize from them. Runs hourly.
type OutboxJanitorJob struct {
	uowFactory    commands.OrderUoWFactory
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOutboxJanitorJob creates a janitor that keeps published events for the
// given number of days.
func NewOutboxJanitorJob(
	uowFactory commands.OrderUoWFactory,
	retentionDays int,
	logger *slog.Logger,
) *OutboxJanitorJob {
	return &OutboxJanitorJob{
		uowFactory:    uowFactory,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "outbox_janitor_job"),
	}
}

// Start begins the janitor job to run at the top of every hour.
func (j *OutboxJanitorJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox janitor job started (running hourly)",
		"retention_days", j.retentionDays)
	return nil
}

// Stop stops the janitor job.
func (j *OutboxJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox janitor job stopped")
}

func (j *OutboxJanitorJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Outbox janitor could not begin transaction", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.EventRepository().DeletePublishedBefore(ctx, j.retentionDays)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox janitor sweep failed", "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Outbox janitor could not commit", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Removed published outbox events", "count", removed)
	}
}
