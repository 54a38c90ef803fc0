package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// New orders start pending and unassigned; the creation event is written to
// the outbox in the same transaction and, after commit, pushed to the
// owner's subscription scope.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authGuard  services.AuthorizationGuard
	catalog    product.Catalog
	notifier   EventNotifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	authGuard services.AuthorizationGuard,
	catalog product.Catalog,
	notifier EventNotifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authGuard:  authGuard,
		catalog:    catalog,
		notifier:   notifier,
	}
}

// Handle processes the order placement command: authorize, build the pending
// aggregate, persist it together with its creation event, notify on commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authGuard.Authorize(cmd.RequestedBy(), nil, services.ActionCreateOrder); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.RequestedBy().ID(), cmd.ProductKind(), cmd.Quantity(), cmd.Location(),
	)
	if err != nil {
		return nil, err
	}

	event, err := order.NewEvent(order.EventKindCreated, newOrder, h.catalog)
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.EventRepository().Add(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(ctx, event)
	return newOrder, nil
}
