package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrRegisterActorCommandIsNotConstructed = errors.New(
	"RegisterActorCommand must be created via NewRegisterActorCommand constructor",
)

// RegisterActorCommand represents a request to register a new actor profile,
// issued when the identity provider reports a user the system has not seen.
type RegisterActorCommand struct { //nolint:recvcheck //using for validation
	actorID     kernel.UUID
	role        actor.Role
	fullName    string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewRegisterActorCommand creates a command to register an actor. The full
// name requirement is enforced by the actor aggregate.
func NewRegisterActorCommand(
	actorID kernel.UUID,
	role actor.Role,
	fullName string,
	phoneNumber string,
) (RegisterActorCommand, error) {
	cmd := RegisterActorCommand{
		fullName:    fullName,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setRole(role),
	); err != nil {
		return RegisterActorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterActorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterActorCommandIsNotConstructed)
}

// ActorID returns the identifier of the new actor.
func (c RegisterActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the actor's role.
func (c RegisterActorCommand) Role() actor.Role {
	return c.role
}

// FullName returns the actor's display name.
func (c RegisterActorCommand) FullName() string {
	return c.fullName
}

// PhoneNumber returns the actor's contact number, possibly empty.
func (c RegisterActorCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *RegisterActorCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RegisterActorCommand) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
