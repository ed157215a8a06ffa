package audit_test

import (
	"context"
	"testing"

	"remote-controller/core/audit"
	"remote-controller/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRecorder_SQLite(t *testing.T) {
	ctx := context.Background()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	rec := audit.NewGormRecorder(db)
	require.NoError(t, rec.Migrate(ctx))

	require.NoError(t, rec.Record(ctx, audit.WakeEvent{PhysicalAddress: "aa:bb:cc:dd:ee:ff", Success: true}))
	require.NoError(t, rec.Record(ctx, audit.WakeEvent{PhysicalAddress: "aa:bb:cc:dd:ee:ff", Error: "network unreachable"}))

	events, err := rec.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "network unreachable", events[0].Error)
	assert.False(t, events[0].Success)
	assert.True(t, events[1].Success)
	assert.False(t, events[1].CreatedAt.IsZero())

	events, err = rec.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
