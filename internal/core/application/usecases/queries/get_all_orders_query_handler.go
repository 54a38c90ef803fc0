package queries

import (
	"context"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/product"
)

// GetAllOrdersQueryHandler serves the admin's full order listing.
type GetAllOrdersQueryHandler struct {
	db      *gorm.DB
	catalog product.Catalog
}

// NewGetAllOrdersQueryHandler creates a handler over the given read
// connection and price catalog.
func NewGetAllOrdersQueryHandler(db *gorm.DB, catalog product.Catalog) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db, catalog: catalog}
}

// Handle executes the query, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryOrders(h.db.WithContext(ctx), h.catalog, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
}
