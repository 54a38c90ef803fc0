// Package actorrepo persists actor profiles.
package actorrepo

import (
	"time"

	"github.com/google/uuid"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
)

// ActorDTO represents the database structure for persisting actors.
type ActorDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role        string    `gorm:"index"`
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

func fromDomain(aggregate *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:          aggregate.ID().Bytes(),
		Role:        aggregate.Role().String(),
		FullName:    aggregate.FullName(),
		PhoneNumber: aggregate.PhoneNumber(),
	}
}

func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return actor.RestoreActor(id, role, dto.FullName, dto.PhoneNumber)
}
