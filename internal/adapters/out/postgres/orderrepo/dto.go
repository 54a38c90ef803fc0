// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner, assignee, and status to serve the scoped listings.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index"`
	ProductKind string
	Quantity    int
	Status      string `gorm:"index"`
	Latitude    *float64
	Longitude   *float64
	Address     string
	CreatedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var assignedTo *uuid.UUID
	if id := aggregate.AssignedTo(); id != nil {
		raw := id.Bytes()
		assignedTo = &raw
	}

	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		AssignedTo:  assignedTo,
		ProductKind: aggregate.ProductKind().String(),
		Quantity:    aggregate.Quantity(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
	}
	if location := aggregate.Location(); location != nil {
		lat, lng := location.Latitude(), location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
		dto.Address = location.Address()
	}

	return dto
}

// toDomain reconstructs the aggregate via RestoreOrder, so a row violating
// the status/assignee consistency rule fails loudly instead of loading.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assigneeErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}

		assignedTo = &aID
	}

	productKind, err := product.KindFromString(dto.ProductKind)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude, dto.Address)
		if locErr != nil {
			return nil, locErr
		}

		location = &loc
	}

	return order.RestoreOrder(
		id, ownerID, productKind, dto.Quantity, status, assignedTo, location, dto.CreatedAt,
	)
}
