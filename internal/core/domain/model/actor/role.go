package actor

import (
	"fmt"

	"gasdelivery/internal/pkg/errs"
)

// Role classifies an authenticated identity. Every actor has exactly one role
// and it never changes after registration; authorization decisions key on it.
//
// Roles:
//   - Customer: places orders and may cancel their own pending orders.
//   - Admin: assigns delivery personnel and may cancel any active order.
//   - Delivery: progresses orders they are assigned to.
type Role string

const (
	// RoleCustomer places and tracks their own orders.
	RoleCustomer Role = "customer"
	// RoleAdmin operates the dispatch dashboard.
	RoleAdmin Role = "admin"
	// RoleDelivery carries out assigned deliveries.
	RoleDelivery Role = "delivery"
)

// RoleFromString parses a role from persistence or client input.
// Returns a value-is-invalid error for anything outside the fixed set.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the three known roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsStaff reports whether the role is entitled to the all-orders subscription
// scope. Customers are not; they only ever see their own orders.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleDelivery
}
