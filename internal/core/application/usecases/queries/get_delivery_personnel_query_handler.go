package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/kernel"
)

// DeliveryPersonResponse represents one delivery person in the pool.
type DeliveryPersonResponse struct {
	ID          kernel.UUID
	FullName    string
	PhoneNumber string
}

// GetDeliveryPersonnelQueryHandler lists the delivery personnel pool.
type GetDeliveryPersonnelQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryPersonnelQueryHandler creates a handler over the given read
// connection.
func NewGetDeliveryPersonnelQueryHandler(db *gorm.DB) GetDeliveryPersonnelQueryHandler {
	return GetDeliveryPersonnelQueryHandler{db: db}
}

// Handle executes the query, ordered by name for stable pickers.
func (h GetDeliveryPersonnelQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryPersonnelQuery,
) ([]DeliveryPersonResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			phone_number
		FROM actors
		WHERE role = ?
		ORDER BY full_name
	`, actor.RoleDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	personnel := make([]DeliveryPersonResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			resp DeliveryPersonResponse
		)

		if err = rows.Scan(&id, &resp.FullName, &resp.PhoneNumber); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		personnel = append(personnel, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return personnel, nil
}
