package queries

import (
	"context"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/product"
)

// GetOrdersByOwnerQueryHandler serves a customer's own order listing.
type GetOrdersByOwnerQueryHandler struct {
	db      *gorm.DB
	catalog product.Catalog
}

// NewGetOrdersByOwnerQueryHandler creates a handler over the given read
// connection and price catalog.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB, catalog product.Catalog) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query, newest orders first.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrders(h.db.WithContext(ctx), h.catalog, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().Bytes())
}
