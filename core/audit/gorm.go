package audit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// GormRecorder stores events through GORM.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder wraps db. Call Migrate once before first use on a fresh schema.
func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

// Migrate creates or updates the wake_events table.
func (r *GormRecorder) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&WakeEvent{}); err != nil {
		return fmt.Errorf("failed to migrate wake_events: %w", err)
	}
	return nil
}

func (r *GormRecorder) Record(ctx context.Context, ev WakeEvent) error {
	if err := r.db.WithContext(ctx).Create(&ev).Error; err != nil {
		return fmt.Errorf("failed to record wake event: %w", err)
	}
	return nil
}

func (r *GormRecorder) Recent(ctx context.Context, limit int) ([]WakeEvent, error) {
	var events []WakeEvent
	q := r.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load wake events: %w", err)
	}
	return events, nil
}
