package audit

import (
	"context"
	"time"
)

// WakeEvent is one attempt to wake a machine.
type WakeEvent struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	PhysicalAddress string    `gorm:"size:17" json:"physical_address"`
	RemoteAddr      string    `gorm:"size:64" json:"remote_addr"`
	Success         bool      `json:"success"`
	Error           string    `gorm:"size:512" json:"error,omitempty"`
}

// TableName overrides the table name used by GORM.
func (WakeEvent) TableName() string {
	return "wake_events"
}

// Recorder stores wake events.
type Recorder interface {
	// Record stores ev.
	Record(ctx context.Context, ev WakeEvent) error
	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]WakeEvent, error)
}
