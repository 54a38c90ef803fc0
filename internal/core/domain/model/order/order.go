package order

import (
	"errors"
	"fmt"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/pkg/errs"
)

const (
	// QuantityMin is the smallest number of cylinders per order.
	QuantityMin = 1
	// QuantityMax is the largest number of cylinders per order.
	QuantityMax = 10
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the delivery lifecycle. It owns the status
// state machine and the binding between an order and its delivery person.
//
// Invariants:
//   - Exactly one owner, set at creation, never reassigned.
//   - Product kind, quantity and location are immutable after creation.
//   - Status only moves along the lifecycle graph (see Status).
//   - The assignee is set exactly once, by the pending -> accepted assignment;
//     it is present if and only if the status has passed acceptance, except on
//     cancelled orders which keep whatever they had.
//   - delivered and cancelled orders reject every further mutation.
//
// All fields are private; mutation happens only through validated methods so
// a torn or partially applied state cannot be constructed in memory.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID is the customer who placed the order
	ownerID kernel.UUID

	// productKind is the catalog SKU being delivered
	productKind product.Kind

	// quantity is the number of cylinders, within [QuantityMin..QuantityMax]
	quantity int

	// status is the current lifecycle state
	status Status

	// assignedTo is the delivery person bound to the order (nil until assignment)
	assignedTo *kernel.UUID

	// location is the delivery destination (nil when the customer gave none)
	location *kernel.Location

	// createdAt is the creation timestamp, the default sort key for listings
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the pending status with no assignee.
//
// Parameters:
//   - id: unique order identifier
//   - ownerID: the customer placing the order
//   - productKind: catalog SKU (must be in the catalog)
//   - quantity: cylinder count within [QuantityMin..QuantityMax]
//   - location: optional delivery destination
//
// Returns the order, or a validation error naming every invalid field.
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	productKind product.Kind,
	quantity int,
	location *kernel.Location,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setProductKind(productKind),
		o.setQuantity(quantity),
		o.setLocation(location),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Beyond field validation it checks the status/assignee consistency rule, so
// a row with an assignee on a pending order fails instead of resurrecting an
// invariant violation.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	productKind product.Kind,
	quantity int,
	status Status,
	assignedTo *kernel.UUID,
	location *kernel.Location,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, ownerID, productKind, quantity, location)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateAssignee(assignedTo != nil); err != nil {
		return nil, err
	}
	if assignedTo != nil {
		if err = assignedTo.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.assignedTo = assignedTo
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the customer who placed the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// ProductKind returns the catalog SKU being delivered.
func (o *Order) ProductKind() product.Kind {
	return o.productKind
}

// Quantity returns the number of cylinders ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the assigned delivery person's ID, or nil before assignment.
func (o *Order) AssignedTo() *kernel.UUID {
	return o.assignedTo
}

// Location returns the delivery destination, or nil when none was given.
func (o *Order) Location() *kernel.Location {
	return o.location
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given actor placed this order.
func (o *Order) IsOwnedBy(actorID kernel.UUID) bool {
	return o.ownerID.IsEqual(actorID)
}

// IsAssignedTo reports whether the given actor is the assigned delivery person.
func (o *Order) IsAssignedTo(actorID kernel.UUID) bool {
	return o.assignedTo != nil && o.assignedTo.IsEqual(actorID)
}

// Assign binds a delivery person and moves the order pending -> accepted.
// Both changes happen on the aggregate in one step, so persistence of the
// aggregate is inherently atomic: there is no representable state with an
// assignee on a pending order or an accepted order without one.
//
// Assignment is single-shot. An order that already left pending, including an
// already accepted one, rejects the move with an invalid-transition error.
func (o *Order) Assign(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedTo = &deliveryPersonID
	return nil
}

// Depart moves the order accepted -> out_for_delivery.
func (o *Order) Depart() error {
	newStatus, err := o.status.Depart()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order out_for_delivery -> delivered. Terminal.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves any non-terminal order to cancelled. Terminal.
// The assignee, if any, is kept for the audit trail.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// TransitionTo applies a requested target status through the state machine.
// accepted is refused here because it is only reachable through Assign; every
// other target dispatches to the corresponding transition method. On error the
// order is left untouched.
func (o *Order) TransitionTo(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch target {
	case StatusAccepted:
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), target.String(),
			errors.New("accepted is only reachable through assignment"))
	case StatusOutForDelivery:
		return o.Depart()
	case StatusDelivered:
		return o.Complete()
	case StatusCancelled:
		return o.Cancel()
	case StatusPending:
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	default:
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setProductKind(productKind product.Kind) error {
	if err := productKind.Validate(); err != nil {
		return err
	}
	o.productKind = productKind
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < QuantityMin || quantity > QuantityMax {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, QuantityMin, QuantityMax)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setLocation(location *kernel.Location) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return fmt.Errorf("location is invalid: %w", err)
	}
	o.location = location
	return nil
}
