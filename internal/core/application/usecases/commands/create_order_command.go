package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a new gas
// bottle order. Encapsulates the product kind, quantity, and an optional
// delivery location.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customer, product.Kind12KG, 2, &location)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requestedBy *actor.Actor
	productKind product.Kind
	quantity    int
	location    *kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates the
// order ID, the requesting actor, and the product kind; the quantity bounds
// are enforced by the order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	requestedBy *actor.Actor,
	productKind product.Kind,
	quantity int,
	location *kernel.Location,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		quantity: quantity,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequestedBy(requestedBy),
		cmd.setProductKind(productKind),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequestedBy returns the actor placing the order.
func (c CreateOrderCommand) RequestedBy() *actor.Actor {
	return c.requestedBy
}

// ProductKind returns the bottle size being ordered.
func (c CreateOrderCommand) ProductKind() product.Kind {
	return c.productKind
}

// Quantity returns the number of bottles requested.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Location returns the delivery location, or nil when none was given.
func (c CreateOrderCommand) Location() *kernel.Location {
	return c.location
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRequestedBy(requestedBy *actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}

func (c *CreateOrderCommand) setProductKind(productKind product.Kind) error {
	if err := productKind.Validate(); err != nil {
		return err
	}

	c.productKind = productKind
	return nil
}
