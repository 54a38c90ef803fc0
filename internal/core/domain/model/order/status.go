package order

import (
	"fmt"

	"gasdelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with a fixed transition graph:
//
//	pending ──> accepted ──> out_for_delivery ──> delivered
//	   │            │               │
//	   └────────────┴───────────────┴──────────> cancelled
//
// pending is the initial status; delivered and cancelled are terminal.
// Transitions are monotonic along the graph: no skipping, no reversal.
// Status is a value object; transition methods return a new value and
// never perform I/O, so the machine is deterministic and trivially testable.
type Status string

const (
	// StatusPending is the initial status: the order is created and waiting
	// for an administrator to assign a delivery person.
	StatusPending Status = "pending"

	// StatusAccepted indicates a delivery person has been assigned.
	// Accepted is only reachable through assignment, never by a direct
	// status update.
	StatusAccepted Status = "accepted"

	// StatusOutForDelivery indicates the assigned delivery person has
	// departed with the cylinders.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered indicates successful completion. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was abandoned before delivery.
	// Terminal. Orders are never deleted; cancellation is the end state.
	StatusCancelled Status = "cancelled"
)

// transitions is the authoritative edge set of the lifecycle graph.
// Anything absent here is an invalid transition.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusAccepted, StatusCancelled},
		StatusAccepted:       {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a status from persistence or client input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether target is a direct edge from s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the next status if the move is an edge of the graph,
// or an invalid-transition error otherwise. The receiver is never mutated.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// Accept transitions pending -> accepted. Used by the assignment path only.
func (s Status) Accept() (Status, error) {
	return s.TransitionTo(StatusAccepted)
}

// Depart transitions accepted -> out_for_delivery.
func (s Status) Depart() (Status, error) {
	return s.TransitionTo(StatusOutForDelivery)
}

// Complete transitions out_for_delivery -> delivered.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(StatusDelivered)
}

// Cancel transitions any non-terminal status -> cancelled.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(StatusCancelled)
}

// ValidateAssignee checks the consistency between a status and the presence
// of an assigned delivery person.
//
// Rules:
//   - pending orders must have no assignee
//   - accepted, out_for_delivery and delivered orders must have one
//   - cancelled orders may have either (cancellation can happen before or
//     after assignment)
func (s Status) ValidateAssignee(assigned bool) error {
	switch s {
	case StatusPending:
		if assigned {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s order must not have an assigned delivery person", s))
		}
	case StatusAccepted, StatusOutForDelivery, StatusDelivered:
		if !assigned {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s order must have an assigned delivery person", s))
		}
	case StatusCancelled:
		// both are fine
	}
	return nil
}
