package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
	"gasdelivery/internal/pkg/errs"
)

// AssignOrderCommandHandler handles delivery person assignment. The assignee
// and the accepted status are written in one transaction, so no observer can
// see an assigned pending order or an accepted order without an assignee.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	authGuard  services.AuthorizationGuard
	locker     OrderLocker
	catalog    product.Catalog
	notifier   EventNotifier
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
func NewAssignOrderCommandHandler(
	uowFactory UoWFactory,
	authGuard services.AuthorizationGuard,
	locker OrderLocker,
	catalog product.Catalog,
	notifier EventNotifier,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		authGuard:  authGuard,
		locker:     locker,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle processes the assignment command under the order's mutation lock:
// load, authorize, check the target's role, apply the atomic
// assignee-plus-status change, persist with the outbox row, notify.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
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

	target, err := uow.ActorRepository().Get(ctx, cmd.DeliveryPersonID())
	if err != nil {
		return nil, err
	}
	if target.Role() != actor.RoleDelivery {
		return nil, errs.NewOperationForbiddenError("assignment target is not a delivery person")
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.authGuard.Authorize(cmd.RequestedBy(), aggregate, services.ActionAssignOrder); err != nil {
		return nil, err
	}

	if err = aggregate.Assign(cmd.DeliveryPersonID()); err != nil {
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
