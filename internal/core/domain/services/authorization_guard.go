package services

import (
	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

// Action identifies an operation an actor may attempt on an order.
type Action string

const (
	// ActionCreateOrder places a new order. Customers only.
	ActionCreateOrder Action = "create_order"

	// ActionCancelOrder cancels an order. The owner may cancel while the order
	// is still pending; an admin may cancel any non-terminal order.
	ActionCancelOrder Action = "cancel"

	// ActionAssignOrder binds a delivery person to an order. Admins only;
	// whether the order's status permits assignment is the aggregate's call.
	ActionAssignOrder Action = "assign"

	// ActionAdvanceStatus moves an order forward along its lifecycle. Only the
	// delivery person recorded as the assignee may advance it.
	ActionAdvanceStatus Action = "advance_status"

	// ActionListAllOrders reads every order in the system. Admins only.
	ActionListAllOrders Action = "list_all_orders"

	// ActionListOwnOrders reads the caller's own orders. Customers only; the
	// query layer scopes the result to the caller's ID.
	ActionListOwnOrders Action = "list_own_orders"

	// ActionListAssignedOrders reads orders assigned to the caller. Delivery
	// personnel only.
	ActionListAssignedOrders Action = "list_assigned_orders"
)

// AuthorizationGuard is a domain service deciding whether an actor may perform
// an action on an order. It is a pure function over the actor's role, the
// order's current state, and the requested action: no I/O, no stored state.
//
// Denials carry a precise reason so callers can tell "you may not do this"
// apart from "this is not a valid move". The guard never silently allows or
// refuses; every path returns either nil or an OperationForbiddenError.
type AuthorizationGuard struct{}

// NewAuthorizationGuard creates a new AuthorizationGuard instance.
func NewAuthorizationGuard() AuthorizationGuard {
	return AuthorizationGuard{}
}

// Authorize checks whether a may perform action on o.
//
// o is required for the order-scoped actions (cancel, assign, advance) and
// ignored for the rest, where callers pass nil.
func (g AuthorizationGuard) Authorize(a *actor.Actor, o *order.Order, action Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	switch action {
	case ActionCreateOrder:
		return g.authorizeCreate(a)
	case ActionCancelOrder:
		return g.authorizeCancel(a, o)
	case ActionAssignOrder:
		return g.authorizeAssign(a, o)
	case ActionAdvanceStatus:
		return g.authorizeAdvance(a, o)
	case ActionListAllOrders:
		return g.requireRole(a, actor.RoleAdmin, "only admins may list all orders")
	case ActionListOwnOrders:
		return g.requireRole(a, actor.RoleCustomer, "only customers have own orders to list")
	case ActionListAssignedOrders:
		return g.requireRole(a, actor.RoleDelivery, "only delivery personnel have assigned orders")
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

// AuthorizeSubscription checks whether a may register a notification
// subscription. A nil ownerID requests the all-orders scope, which is
// reserved for staff; a non-nil ownerID requests the owned scope, which a
// customer may only register for themselves.
func (g AuthorizationGuard) AuthorizeSubscription(a *actor.Actor, ownerID *kernel.UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}

	if ownerID == nil {
		if !a.Role().IsStaff() {
			return errs.NewOperationForbiddenError("only admins and delivery personnel may subscribe to all orders")
		}
		return nil
	}

	if a.Role().IsStaff() {
		return nil
	}
	if !a.ID().IsEqual(*ownerID) {
		return errs.NewOperationForbiddenError("customers may only subscribe to their own orders")
	}
	return nil
}

func (g AuthorizationGuard) authorizeCreate(a *actor.Actor) error {
	return g.requireRole(a, actor.RoleCustomer, "only customers may place orders")
}

func (g AuthorizationGuard) authorizeCancel(a *actor.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if a.Role() == actor.RoleAdmin {
		if o.Status().IsTerminal() {
			return errs.NewOperationForbiddenError("order is already in a terminal state")
		}
		return nil
	}

	if !o.IsOwnedBy(a.ID()) {
		return errs.NewOperationForbiddenError("only the order owner or an admin may cancel an order")
	}
	if o.Status() != order.StatusPending {
		return errs.NewOperationForbiddenError("owners may only cancel orders that are still pending")
	}
	return nil
}

func (g AuthorizationGuard) authorizeAssign(a *actor.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	// The status itself is not an authorization concern: assigning a
	// non-pending order fails in the aggregate as an invalid transition.
	if a.Role() != actor.RoleAdmin {
		return errs.NewOperationForbiddenError("only admins may assign delivery personnel")
	}
	return nil
}

func (g AuthorizationGuard) authorizeAdvance(a *actor.Actor, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.IsAssignedTo(a.ID()) {
		return errs.NewOperationForbiddenError("only the assigned delivery person may advance an order")
	}
	return nil
}

func (g AuthorizationGuard) requireRole(a *actor.Actor, role actor.Role, reason string) error {
	if a.Role() != role {
		return errs.NewOperationForbiddenError(reason)
	}
	return nil
}
