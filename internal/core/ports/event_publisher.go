package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
)

// EventPublisher delivers order events to the message broker. Two routes
// exist: Publish addresses the per-order topic used by low-latency push
// consumers, and PublishChangeCapture feeds the broad change stream that
// resynchronization consumers read. Both carry the identical payload.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
	PublishChangeCapture(ctx context.Context, event order.Event) error
}
