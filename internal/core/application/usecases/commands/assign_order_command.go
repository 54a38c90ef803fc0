package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents an admin's request to bind a delivery person
// to an order.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	requestedBy      *actor.Actor
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign a delivery person.
// Validates all identifiers; the target's existence and role are checked by
// the handler against storage.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	requestedBy *actor.Actor,
	deliveryPersonID kernel.UUID,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
		cmd.setDeliveryPersonID(deliveryPersonID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the actor requesting the assignment.
func (c AssignOrderCommand) RequestedBy() *actor.Actor {
	return c.requestedBy
}

// DeliveryPersonID returns the delivery person to assign.
func (c AssignOrderCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setRequestedBy(requestedBy *actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *AssignOrderCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}
