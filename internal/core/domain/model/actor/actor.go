package actor

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor instance was not created
	// through NewActor or RestoreActor. This ensures all actors are validated.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or RestoreActor")
)

// Actor is the profile of an authenticated identity: a customer, an admin, or
// a delivery person. Credential storage and verification live with the external
// identity provider; the domain only tracks the profile and the immutable role.
//
// Invariants:
//   - Must have a valid unique identifier, matching the identity provider's subject.
//   - Role is set at registration and never changes.
//   - Full name is required; phone number is optional display data.
type Actor struct {
	// id matches the identity provider's subject for this actor
	id kernel.UUID

	// role is fixed at registration
	role Role

	// fullName is the display name shown on orders and dashboards
	fullName string

	// phoneNumber is optional contact information
	phoneNumber string

	// isConstructed ensures the actor was created via a constructor
	isConstructed bool
}

// NewActor creates a validated Actor profile.
//
// Parameters:
//   - id: identity provider subject (must be a valid UUID)
//   - role: one of customer, admin, delivery
//   - fullName: required display name
//   - phoneNumber: optional contact number
//
// Returns the actor, or a validation error if any field is invalid.
func NewActor(id kernel.UUID, role Role, fullName, phoneNumber string) (*Actor, error) {
	a := &Actor{
		phoneNumber:   phoneNumber,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setFullName(fullName),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreActor reconstructs an Actor from persistence.
// The same field validation as NewActor applies, so corrupted rows surface
// as errors instead of invalid aggregates.
func RestoreActor(id kernel.UUID, role Role, fullName, phoneNumber string) (*Actor, error) {
	return NewActor(id, role, fullName, phoneNumber)
}

// Validate ensures the Actor was created through a constructor.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}

	return nil
}

// IsEqual compares two actors by identifier.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's immutable role.
func (a *Actor) Role() Role {
	return a.role
}

// FullName returns the actor's display name.
func (a *Actor) FullName() string {
	return a.fullName
}

// PhoneNumber returns the actor's contact number, possibly empty.
func (a *Actor) PhoneNumber() string {
	return a.phoneNumber
}

// UpdateProfile changes the mutable display fields of the profile.
// The role and identifier never change. The full name stays required.
func (a *Actor) UpdateProfile(fullName, phoneNumber string) error {
	if err := a.setFullName(fullName); err != nil {
		return err
	}

	a.phoneNumber = phoneNumber
	return nil
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Actor) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	a.fullName = fullName
	return nil
}
