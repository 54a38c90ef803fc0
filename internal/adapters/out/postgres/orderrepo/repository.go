package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return nil
}

// Update saves an existing order to the database. Select("*") forces every
// column to be written, so the stored row always matches the aggregate even
// when a field moved to its zero value.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves every order placed by the given customer,
// newest first.
func (r *GormOrderRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	return r.list(ctx, r.db.WithContext(ctx).Where("owner_id = ?", ownerID.Bytes()))
}

// GetAllByAssignee retrieves every order assigned to the given delivery
// person, newest first.
func (r *GormOrderRepository) GetAllByAssignee(ctx context.Context, assigneeID kernel.UUID) ([]*order.Order, error) {
	if err := assigneeID.Validate(); err != nil {
		return nil, err
	}

	return r.list(ctx, r.db.WithContext(ctx).Where("assigned_to = ?", assigneeID.Bytes()))
}

// GetAll retrieves every order in the system, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *GormOrderRepository) list(_ context.Context, tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := tx.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
