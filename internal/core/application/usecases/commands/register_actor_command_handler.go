package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/actor"
)

// RegisterActorCommandHandler persists new actor profiles.
type RegisterActorCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewRegisterActorCommandHandler creates a handler for actor registration.
func NewRegisterActorCommandHandler(uowFactory ActorUoWFactory) RegisterActorCommandHandler {
	return RegisterActorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterActorCommandHandler) Handle(ctx context.Context, cmd RegisterActorCommand) (*actor.Actor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := actor.NewActor(cmd.ActorID(), cmd.Role(), cmd.FullName(), cmd.PhoneNumber())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ActorRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
