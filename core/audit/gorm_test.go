package audit

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGormRecorder_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	rec := NewGormRecorder(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `wake_events`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := rec.Record(context.Background(), WakeEvent{
		PhysicalAddress: "aa:bb:cc:dd:ee:ff",
		RemoteAddr:      "10.0.0.2:5555",
		Success:         true,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRecorder_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	rec := NewGormRecorder(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `wake_events`")).
		WillReturnError(errors.New("table is read only"))
	mock.ExpectRollback()

	err := rec.Record(context.Background(), WakeEvent{PhysicalAddress: "aa:bb:cc:dd:ee:ff"})
	assert.ErrorContains(t, err, "failed to record wake event")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRecorder_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	rec := NewGormRecorder(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "physical_address", "remote_addr", "success", "error"}).
		AddRow(2, now, "aa:bb:cc:dd:ee:ff", "10.0.0.3:1", false, "network unreachable").
		AddRow(1, now, "aa:bb:cc:dd:ee:ff", "10.0.0.2:1", true, "")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `wake_events` ORDER BY id DESC LIMIT")).
		WillReturnRows(rows)

	events, err := rec.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint(2), events[0].ID)
	assert.False(t, events[0].Success)
	assert.Equal(t, "network unreachable", events[0].Error)
	assert.True(t, events[1].Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRecorder_RecentError(t *testing.T) {
	db, mock := setupMockDB(t)
	rec := NewGormRecorder(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `wake_events`")).
		WillReturnError(errors.New("connection lost"))

	_, err := rec.Recent(context.Background(), 5)
	assert.ErrorContains(t, err, "failed to load wake events")
}
