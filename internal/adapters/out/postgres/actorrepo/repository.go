package actorrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
)

// GormActorRepository implements ports.ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Add saves a new actor to the database.
func (r *GormActorRepository) Add(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return nil
}

// Update saves profile changes to an existing actor.
func (r *GormActorRepository) Update(ctx context.Context, aggregate *actor.Actor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ActorDTO{}).
		Where("id = ?", dto.ID).
		Select("role", "full_name", "phone_number").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actor", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return toDomain(dto)
}

// GetAllByRole retrieves every actor with the given role, ordered by name.
func (r *GormActorRepository) GetAllByRole(ctx context.Context, role actor.Role) ([]*actor.Actor, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []ActorDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("full_name").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	actors := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, aggregate)
	}

	return actors, nil
}
