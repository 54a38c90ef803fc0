// Package queries contains read operations for the delivery system.
// Implements the Query side of the CQRS architecture: raw SQL over the read
// connection, returning flat response structs instead of domain aggregates.
// Listings are newest first because clients use them to resynchronize after
// missed push events.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/product"
)

// OrderResponse represents one order row in a listing. The total price is
// derived from the catalog at read time; it is never stored per order.
type OrderResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	ProductKind     string
	Quantity        int
	TotalPriceMinor int64
	Status          string
	AssignedTo      *kernel.UUID
	Latitude        *float64
	Longitude       *float64
	Address         string
	CreatedAt       time.Time
}

const orderColumns = `
		id,
		owner_id,
		assigned_to,
		product_kind,
		quantity,
		status,
		latitude,
		longitude,
		address,
		created_at
`

// scanOrders reads order rows produced by a SELECT over orderColumns.
func scanOrders(rows *sql.Rows, catalog product.Catalog) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			ownerID    uuid.UUID
			assignedTo uuid.NullUUID
			latitude   sql.NullFloat64
			longitude  sql.NullFloat64
			address    sql.NullString
			resp       OrderResponse
		)

		err := rows.Scan(
			&id,
			&ownerID,
			&assignedTo,
			&resp.ProductKind,
			&resp.Quantity,
			&resp.Status,
			&latitude,
			&longitude,
			&address,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if assignedTo.Valid {
			assigneeID, idErr := kernel.UUIDFromBytes(assignedTo.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssignedTo = &assigneeID
		}
		if latitude.Valid && longitude.Valid {
			resp.Latitude = &latitude.Float64
			resp.Longitude = &longitude.Float64
		}
		resp.Address = address.String

		kind, err := product.KindFromString(resp.ProductKind)
		if err != nil {
			return nil, err
		}
		if resp.TotalPriceMinor, err = catalog.TotalPriceMinor(kind, resp.Quantity); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func queryOrders(tx *gorm.DB, catalog product.Catalog, query string, args ...any) ([]OrderResponse, error) {
	rows, err := tx.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows, catalog)
}
