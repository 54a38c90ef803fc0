package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/actor"
)

// IdentityProvider resolves a bearer token to the authenticated actor.
// Unknown or expired tokens return an UnauthenticatedError.
type IdentityProvider interface {
	CurrentActor(ctx context.Context, token string) (*actor.Actor, error)
}
