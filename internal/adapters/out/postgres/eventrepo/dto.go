// Package eventrepo persists the transactional outbox for order events.
// Rows are written in the same transaction as the order mutation and drained
// to the broker by the relay job.
package eventrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gasdelivery/internal/core/domain/model/order"
)

// EventDTO represents an outbox row. The full event payload is stored as
// JSON so the relay republishes exactly what the mutation produced.
type EventDTO struct {
	EventID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredAt  time.Time `gorm:"index"`
	Published   bool      `gorm:"index"`
	PublishedAt *time.Time
}

// TableName overrides GORM's default naming convention to use "order_events".
func (EventDTO) TableName() string {
	return "order_events"
}

func fromDomain(event order.Event) (EventDTO, error) {
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return EventDTO{}, err
	}

	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return EventDTO{}, err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		EventID:    eventID,
		OrderID:    orderID,
		Payload:    payload,
		OccurredAt: event.OccurredAt,
	}, nil
}

func toDomain(dto EventDTO) (order.Event, error) {
	var event order.Event
	if err := json.Unmarshal(dto.Payload, &event); err != nil {
		return order.Event{}, err
	}

	return event, nil
}
