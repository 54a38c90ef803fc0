package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
)

// EventRepository is the transactional outbox for order events. Command
// handlers append the event in the same transaction as the order write, so
// an event exists if and only if its mutation committed. A relay job drains
// unpublished rows to the message broker; subscribers that missed a push
// resynchronize from this change-capture stream.
type EventRepository interface {
	// Add appends an event to the outbox within the current transaction.
	Add(ctx context.Context, event order.Event) error

	// GetUnpublished retrieves up to limit events that have not been
	// relayed yet, oldest first so per-order commit order is preserved.
	GetUnpublished(ctx context.Context, limit int) ([]order.Event, error)

	// MarkPublished records that the events with the given IDs reached
	// the broker.
	MarkPublished(ctx context.Context, eventIDs []string) error

	// DeletePublishedBefore removes published rows older than the given
	// number of days. Returns the number of rows removed.
	DeletePublishedBefore(ctx context.Context, days int) (int64, error)
}
