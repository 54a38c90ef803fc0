package eventrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

// NotifyChannel is the postgres NOTIFY channel raised on every outbox
// insert. The relay listens on it to drain new rows without waiting for the
// next scheduled tick.
const NotifyChannel = "order_events"

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM outbox repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add appends the event to the outbox and nudges the relay over NOTIFY.
// The notification rides the surrounding transaction: it fires only if the
// mutation commits.
func (r *GormEventRepository) Add(ctx context.Context, event order.Event) error {
	dto, err := fromDomain(event)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("event", err)
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	if err = r.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", NotifyChannel, dto.EventID.String()).Error; err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return nil
}

// GetUnpublished retrieves up to limit unpublished events, oldest first.
func (r *GormEventRepository) GetUnpublished(ctx context.Context, limit int) ([]order.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("published = ?", false).
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkPublished records that the given events reached the broker.
func (r *GormEventRepository) MarkPublished(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("event_id IN ?", eventIDs).
		Updates(map[string]any{"published": true, "published_at": now}).Error
	if err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("postgres", err)
	}

	return nil
}

// DeletePublishedBefore removes published rows older than the given number
// of days.
func (r *GormEventRepository) DeletePublishedBefore(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	result := r.db.WithContext(ctx).
		Where("published = ? AND occurred_at < ?", true, cutoff).
		Delete(&EventDTO{})
	if result.Error != nil {
		return 0, errs.NewUpstreamUnavailableErrorWithCause("postgres", result.Error)
	}

	return result.RowsAffected, nil
}
