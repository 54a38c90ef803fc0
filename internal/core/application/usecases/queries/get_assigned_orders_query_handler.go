package queries

import (
	"context"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/product"
)

// GetAssignedOrdersQueryHandler serves a delivery person's assignment list.
type GetAssignedOrdersQueryHandler struct {
	db      *gorm.DB
	catalog product.Catalog
}

// NewGetAssignedOrdersQueryHandler creates a handler over the given read
// connection and price catalog.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB, catalog product.Catalog) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query, newest orders first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrders(h.db.WithContext(ctx), h.catalog, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE assigned_to = ?
		ORDER BY created_at DESC
	`, query.AssigneeID().Bytes())
}
