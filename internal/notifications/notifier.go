package notifications

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/ports"
)

// Notifier is the single emission point command handlers call after a
// mutation commits. It fans the event out to the in-process registry and to
// the per-order broker topic concurrently.
//
// Delivery failures are logged and swallowed: the mutation already
// committed, and subscribers that miss a push heal through the
// change-capture stream or a pull resync. Notify therefore never returns an
// error to the caller.
type Notifier struct {
	registry  *Registry
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewNotifier creates a Notifier over the given registry and broker
// publisher. publisher may be nil, in which case only in-process
// subscribers are served.
func NewNotifier(registry *Registry, publisher ports.EventPublisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		registry:  registry,
		publisher: publisher,
		logger:    logger.With("component", "notifier"),
	}
}

// Notify pushes the event to every matching in-process subscription and to
// the broker's per-order topic.
func (n *Notifier) Notify(ctx context.Context, event order.Event) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		delivered := n.registry.Publish(event)
		n.logger.DebugContext(gctx, "Event delivered to in-process subscribers",
			"order_id", event.OrderID, "status", event.Status, "delivered", delivered)
		return nil
	})

	if n.publisher != nil {
		g.Go(func() error {
			if err := n.publisher.Publish(gctx, event); err != nil {
				n.logger.ErrorContext(gctx, "Broker publish failed, relying on change-capture relay",
					"order_id", event.OrderID, "error", err)
			}
			return nil
		})
	}

	_ = g.Wait()
}
