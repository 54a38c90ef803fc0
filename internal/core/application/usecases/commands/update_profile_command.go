package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents an actor updating their own profile.
// The role is immutable; only the display name and phone number change.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	requestedBy *actor.Actor
	fullName    string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update the caller's profile.
func NewUpdateProfileCommand(
	requestedBy *actor.Actor,
	fullName string,
	phoneNumber string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		fullName:    fullName,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setRequestedBy(requestedBy); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// RequestedBy returns the actor whose profile changes.
func (c UpdateProfileCommand) RequestedBy() *actor.Actor {
	return c.requestedBy
}

// FullName returns the new display name.
func (c UpdateProfileCommand) FullName() string {
	return c.fullName
}

// PhoneNumber returns the new contact number, possibly empty.
func (c UpdateProfileCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *UpdateProfileCommand) setRequestedBy(requestedBy *actor.Actor) error {
	if err := requestedBy.Validate(); err != nil {
		return err
	}

	c.requestedBy = requestedBy
	return nil
}
