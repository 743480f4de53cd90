package scanlogrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Record appended", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO scan_logs (scanned_value) VALUES ($1) RETURNING id, created_at")).
			WithArgs("qr-abc").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		log, err := repo.Create(context.Background(), "qr-abc")
		assert.NoError(t, err)
		assert.Equal(t, 1, log.ID)
		assert.Equal(t, "qr-abc", log.ScannedValue)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO scan_logs")).
			WithArgs("qr-abc").
			WillReturnError(errors.New("database error"))

		log, err := repo.Create(context.Background(), "qr-abc")
		assert.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestRepository_ListSince(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	since := now.Add(-24 * time.Hour)

	t.Run("Window returned newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "scanned_value", "created_at"}).
			AddRow(2, "qr-abc", now).
			AddRow(1, "qr-def", now.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, scanned_value, created_at FROM scan_logs WHERE created_at >= $1 ORDER BY created_at DESC")).
			WithArgs(since).
			WillReturnRows(rows)

		logs, err := repo.ListSince(context.Background(), since)
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
		assert.Equal(t, 2, logs[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, scanned_value, created_at FROM scan_logs")).
			WithArgs(since).
			WillReturnError(errors.New("database error"))

		logs, err := repo.ListSince(context.Background(), since)
		assert.Error(t, err)
		assert.Nil(t, logs)
	})
}
