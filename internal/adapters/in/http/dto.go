// Package http exposes the delivery system over a JSON API. Handlers stay
// thin: decode, build a command or query, dispatch, encode.
package http

import (
	"time"

	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/actor"
	"gasdelivery/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ProductKind string   `json:"product_kind"`
	Quantity    int      `json:"quantity"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignOrderRequest struct {
	DeliveryPersonID string `json:"delivery_person_id"`
}

// UpdateProfileRequest is the body of PUT /api/v1/profile.
type UpdateProfileRequest struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
}

// OrderResponse is the order representation returned by every order endpoint.
type OrderResponse struct {
	ID              string   `json:"id"`
	OwnerID         string   `json:"owner_id"`
	ProductKind     string   `json:"product_kind"`
	Quantity        int      `json:"quantity"`
	TotalPriceMinor int64    `json:"total_price_minor"`
	Status          string   `json:"status"`
	AssignedTo      *string  `json:"assigned_to"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Address         string   `json:"address,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

// ProfileResponse is the actor representation for profile endpoints.
type ProfileResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// DeliveryPersonResponse is one entry of the personnel listing.
type DeliveryPersonResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func orderResponseFromQuery(row queries.OrderResponse) OrderResponse {
	resp := OrderResponse{
		ID:              row.ID.String(),
		OwnerID:         row.OwnerID.String(),
		ProductKind:     row.ProductKind,
		Quantity:        row.Quantity,
		TotalPriceMinor: row.TotalPriceMinor,
		Status:          row.Status,
		Latitude:        row.Latitude,
		Longitude:       row.Longitude,
		Address:         row.Address,
		CreatedAt:       row.CreatedAt.Format(time.RFC3339Nano),
	}
	if row.AssignedTo != nil {
		s := row.AssignedTo.String()
		resp.AssignedTo = &s
	}
	return resp
}

func orderResponseFromEvent(event order.Event) OrderResponse {
	return OrderResponse{
		ID:              event.Snapshot.OrderID,
		OwnerID:         event.Snapshot.OwnerID,
		ProductKind:     event.Snapshot.ProductKind,
		Quantity:        event.Snapshot.Quantity,
		TotalPriceMinor: event.Snapshot.TotalPriceMinor,
		Status:          event.Snapshot.Status,
		AssignedTo:      event.Snapshot.AssignedTo,
		Latitude:        event.Snapshot.Latitude,
		Longitude:       event.Snapshot.Longitude,
		Address:         event.Snapshot.Address,
		CreatedAt:       event.Snapshot.CreatedAt,
	}
}

func profileResponseFromActor(a *actor.Actor) ProfileResponse {
	return ProfileResponse{
		ID:          a.ID().String(),
		Role:        a.Role().String(),
		FullName:    a.FullName(),
		PhoneNumber: a.PhoneNumber(),
	}
}
