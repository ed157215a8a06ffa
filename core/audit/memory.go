package audit

import (
	"context"
	"sync"
	"time"
)

// DefaultMemorySize is used when a non-positive size is requested.
const DefaultMemorySize = 100

// MemoryRecorder keeps the last N events in memory.
type MemoryRecorder struct {
	mu     sync.Mutex
	events []WakeEvent
	next   int
	full   bool
	lastID uint
}

// NewMemoryRecorder creates a ring holding up to size events.
func NewMemoryRecorder(size int) *MemoryRecorder {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &MemoryRecorder{events: make([]WakeEvent, size)}
}

func (r *MemoryRecorder) Record(ctx context.Context, ev WakeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	ev.ID = r.lastID
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	r.events[r.next] = ev
	r.next = (r.next + 1) % len(r.events)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

func (r *MemoryRecorder) Recent(ctx context.Context, limit int) ([]WakeEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := r.next
	if r.full {
		count = len(r.events)
	}
	if limit <= 0 || limit > count {
		limit = count
	}

	out := make([]WakeEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.events)) % len(r.events)
		out = append(out, r.events[idx])
	}
	return out, nil
}
