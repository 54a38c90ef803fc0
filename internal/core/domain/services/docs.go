// Package services provides domain services that implement business rules
// spanning multiple aggregates in the gas delivery system.
//
// The package includes:
//   - AuthorizationGuard: a pure decision service answering whether an actor
//     may perform a given action on an order
//
// Domain services hold no state and perform no I/O, so every rule is
// deterministic and unit-testable in isolation.
package services
