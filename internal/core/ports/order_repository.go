package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Listings are ordered by creation time descending, newest first, because
// clients use them as the resynchronization path for missed events.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError for unknown IDs.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOwner retrieves every order placed by the given customer.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// GetAllByAssignee retrieves every order assigned to the given
	// delivery person.
	GetAllByAssignee(ctx context.Context, assigneeID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in the system.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
