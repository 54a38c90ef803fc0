package jobs

import (
	"context"
	"log/slog"

	"github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/ports"
)

// relayBatchSize caps how many outbox rows a single drain moves to the
// broker. Oldest rows go first so per-order commit order survives the hop.
const relayBatchSize = 100

// OutboxRelayJob drains unpublished order events from the outbox to the
// broker's change-capture stream. A cron tick every second is the floor;
// a LISTEN/NOTIFY nudge from the outbox insert wakes the relay immediately
// so push consumers rarely wait for the tick.
type OutboxRelayJob struct {
	uowFactory commands.OrderUoWFactory
	publisher  ports.EventPublisher
	listener   *pq.Listener
	cron       *cron.Cron
	logger     *slog.Logger
	done       chan struct{}
}

// NewOutboxRelayJob creates the relay. The listener is optional; without it
// the relay still drains on every cron tick.
func NewOutboxRelayJob(
	uowFactory commands.OrderUoWFactory,
	publisher ports.EventPublisher,
	listener *pq.Listener,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		listener:   listener,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_relay_job"),
		done:       make(chan struct{}),
	}
}

// Start begins the relay: every second plus on every outbox notification.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.relayOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()

	if j.listener != nil {
		go j.listenForNudges()
	}

	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	close(j.done)
	j.cron.Stop()
	if j.listener != nil {
		if err := j.listener.Close(); err != nil {
			j.logger.Error("Closing outbox listener failed", "error", err)
		}
	}
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) listenForNudges() {
	for {
		select {
		case <-j.done:
			return
		case notification := <-j.listener.Notify:
			// A nil notification signals a reconnect; the next cron
			// tick covers anything missed in between.
			if notification != nil {
				j.relayOnce(context.Background())
			}
		}
	}
}

// relayOnce moves one batch of unpublished events to the broker. Events are
// published in storage order; the first broker failure stops the batch so
// order holds, and the unpublished tail is retried on the next run.
func (j *OutboxRelayJob) relayOnce(ctx context.Context) {
	uow := j.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay could not begin transaction", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	events, err := uow.EventRepository().GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay could not read outbox", "error", err)
		return
	}
	if len(events) == 0 {
		return
	}

	published := make([]string, 0, len(events))
	for _, event := range events {
		if err = j.publisher.PublishChangeCapture(ctx, event); err != nil {
			j.logger.ErrorContext(ctx, "Broker publish failed, stopping batch",
				"event_id", event.EventID, "error", err)
			break
		}
		published = append(published, event.EventID)
	}
	if len(published) == 0 {
		return
	}

	if err = uow.EventRepository().MarkPublished(ctx, published); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay could not mark events published", "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay could not commit", "error", err)
		return
	}

	j.logger.DebugContext(ctx, "Relayed outbox events", "count", len(published))
}
