package order

import (
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/product"
	"gasdelivery/internal/pkg/errs"
)

// EventKind distinguishes a newly placed order from a lifecycle change.
type EventKind string

const (
	EventKindCreated EventKind = "created"
	EventKindUpdated EventKind = "updated"
)

// Snapshot is the full order state carried by every event. Subscribers always
// receive the whole record rather than a diff, so a missed event is healed by
// the next one or by a pull resync.
type Snapshot struct {
	OrderID         string   `json:"order_id"`
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

// Event is the payload published on every successful mutation. Both delivery
// channels carry this exact shape, so clients cannot tell which transport an
// event arrived on.
type Event struct {
	EventID    string    `json:"event_id"`
	Kind       EventKind `json:"kind"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	AssignedTo *string   `json:"assigned_to"`
	Snapshot   Snapshot  `json:"snapshot"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent captures the current state of o as an event of the given kind.
// The total price is derived from the catalog at capture time, never stored
// on the order itself.
func NewEvent(kind EventKind, o *Order, catalog product.Catalog) (Event, error) {
	if err := o.Validate(); err != nil {
		return Event{}, err
	}
	if kind != EventKindCreated && kind != EventKindUpdated {
		return Event{}, errs.NewValueIsInvalidError("kind")
	}

	totalPrice, err := catalog.TotalPriceMinor(o.ProductKind(), o.Quantity())
	if err != nil {
		return Event{}, err
	}

	snapshot := Snapshot{
		OrderID:         o.ID().String(),
		OwnerID:         o.OwnerID().String(),
		ProductKind:     o.ProductKind().String(),
		Quantity:        o.Quantity(),
		TotalPriceMinor: totalPrice,
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt().Format(time.RFC3339Nano),
	}
	if assignee := o.AssignedTo(); assignee != nil {
		s := assignee.String()
		snapshot.AssignedTo = &s
	}
	if location := o.Location(); location != nil {
		lat, lng := location.Latitude(), location.Longitude()
		snapshot.Latitude = &lat
		snapshot.Longitude = &lng
		snapshot.Address = location.Address()
	}

	return Event{
		EventID:    kernel.NewUUID().String(),
		Kind:       kind,
		OrderID:    snapshot.OrderID,
		Status:     snapshot.Status,
		AssignedTo: snapshot.AssignedTo,
		Snapshot:   snapshot,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// OwnerID reports the owner recorded in the snapshot. Used by the fan-out
// layer to match owned-scope subscriptions.
func (e Event) OwnerID() string {
	return e.Snapshot.OwnerID
}
