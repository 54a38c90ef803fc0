package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler handles requested status transitions.
// Orchestration order is fixed: acquire the order's mutation lock, load,
// authorize, apply the state machine, persist with the outbox row, notify.
// Any failure before commit leaves the stored order untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	authGuard  services.AuthorizationGuard
	locker     OrderLocker
	catalog    product.Catalog
	notifier   EventNotifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	authGuard services.AuthorizationGuard,
	locker OrderLocker,
	catalog product.Catalog,
	notifier EventNotifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		authGuard:  authGuard,
		locker:     locker,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle processes the transition request. Cancellation is authorized under
// the cancel rules (owner while pending, admin while non-terminal); every
// other target is an advance reserved for the assigned delivery person.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.locker.Acquire(ctx, cmd.OrderID().String())
	if err != nil {
		return nil, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	action := services.ActionAdvanceStatus
	if cmd.TargetStatus() == order.StatusCancelled {
		action = services.ActionCancelOrder
	}
	if err = h.authGuard.Authorize(cmd.RequestedBy(), aggregate, action); err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.TargetStatus()); err != nil {
		return nil, err
	}

	event, err := order.NewEvent(order.EventKindUpdated, aggregate, h.catalog)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, event)
	return aggregate, nil
}
