package jobs

import (
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob   *OutboxRelayJob
	outboxJanitorJob *OutboxJanitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.OrderUoWFactory,
	publisher ports.EventPublisher,
	listener *pq.Listener,
	retentionDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRelayJob:   NewOutboxRelayJob(uowFactory, publisher, listener, logger),
		outboxJanitorJob: NewOutboxJanitorJob(uowFactory, retentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.outboxJanitorJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start outbox janitor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxJanitorJob.Stop()
	jm.outboxRelayJob.Stop()
}
