// Package kernel provides core domain primitives shared across the delivery
// coordination model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Location: a value object for geographic delivery destinations
//
// Both primitives are immutable, enforce their invariants at construction time,
// and are safe for concurrent use.
package kernel
