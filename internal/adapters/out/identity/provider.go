// Package identity resolves bearer tokens to registered actors.
//
// Token verification is delegated to the gateway in front of this service;
// by the time a request reaches us, the token is the caller's actor id. The
// provider only has to confirm the actor exists and load its profile.
package identity

import (
	"context"
	"errors"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/ports"
	"gasdelivery/internal/pkg/errs"
)

var _ ports.IdentityProvider = &Provider{}

// Provider looks callers up in the actor store.
type Provider struct {
	actors ports.ActorRepository
}

// NewProvider creates an identity provider over the given actor repository.
func NewProvider(actors ports.ActorRepository) (*Provider, error) {
	if actors == nil {
		return nil, errs.NewValueIsRequiredError("actors")
	}
	return &Provider{actors: actors}, nil
}

// CurrentActor resolves a bearer token to the actor it identifies.
func (p *Provider) CurrentActor(ctx context.Context, token string) (*actor.Actor, error) {
	id, err := kernel.UUIDFromString(token)
	if err != nil {
		return nil, errs.NewUnauthenticatedError("token is not a valid identity")
	}

	caller, err := p.actors.Get(ctx, id)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return nil, errs.NewUnauthenticatedError("unknown identity")
		}
		return nil, err
	}

	return caller, nil
}
