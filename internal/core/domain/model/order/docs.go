// Package order contains the Order aggregate and its lifecycle state machine.
//
// The aggregate enforces the ordering rules of the delivery business: who an
// order belongs to, what is being delivered, and how the status may move from
// pending through acceptance and delivery, or to cancellation. The state
// machine is pure: transition decisions involve no I/O and are fully
// deterministic, which keeps the whole lifecycle unit-testable.
//
// Authorization (who may trigger a transition) deliberately lives outside this
// package, in the domain services layer; the aggregate only answers whether a
// move is legal at all.
package order
