package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for actor aggregates.
type ActorRepository interface {
	// Add persists a new actor. The ID must not already exist.
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Update persists profile changes to an existing actor.
	Update(ctx context.Context, aggregate *actor.Actor) error

	// Get retrieves an actor by ID. Returns an ObjectNotFoundError for
	// unknown IDs.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// GetAllByRole retrieves every actor with the given role, used to list
	// delivery personnel available for assignment.
	GetAllByRole(ctx context.Context, role actor.Role) ([]*actor.Actor, error)
}
