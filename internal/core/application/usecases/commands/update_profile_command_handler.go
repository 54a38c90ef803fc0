package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/actor"
)

// UpdateProfileCommandHandler persists profile changes. The aggregate is
// reloaded inside the transaction so the write applies to the stored state,
// not the middleware's cached copy.
type UpdateProfileCommandHandler struct {
	uowFactory ActorUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory ActorUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*actor.Actor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ActorRepository().Get(ctx, cmd.RequestedBy().ID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateProfile(cmd.FullName(), cmd.PhoneNumber()); err != nil {
		return nil, err
	}

	if err = uow.ActorRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
