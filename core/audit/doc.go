// Package audit records every wake attempt made through the listener.
//
// # Recorders
//
//   - GormRecorder persists events in the wake_events table of the optional
//     emulator-style database connection (MySQL or SQLite, see core/database).
//   - MemoryRecorder keeps the most recent events in a bounded ring and is used
//     when no database is configured or the connection fails.
//
// Both satisfy Recorder and are safe for concurrent use by connection goroutines.
//
// # Usage
//
//	rec := audit.NewMemoryRecorder(cfg.Audit.MemorySize)
//	_ = rec.Record(ctx, audit.WakeEvent{PhysicalAddress: mac, Success: true})
//	events, _ := rec.Recent(ctx, 20)
package audit
