package scanlogrepo

import (
	"context"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/store"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends one immutable record per accepted scan. The raw scanned
// value is stored verbatim.
func (r *Repository) Create(ctx context.Context, scannedValue string) (*domain.ScanLog, error) {
	query := `
        INSERT INTO scan_logs (scanned_value)
        VALUES ($1)
        RETURNING id, created_at
    `
	log := domain.ScanLog{ScannedValue: scannedValue}
	err := r.db.QueryRow(ctx, query, scannedValue).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		zap.L().Error("can't create scan log", zap.Error(err))
		return nil, store.WriteError(err)
	}
	return &log, nil
}

func (r *Repository) ListSince(ctx context.Context, since time.Time) ([]domain.ScanLog, error) {
	query := `
        SELECT id, scanned_value, created_at
        FROM scan_logs
        WHERE created_at >= $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		zap.L().Error("can't list scan logs", zap.Error(err))
		return nil, store.ReadError(err)
	}
	defer rows.Close()

	var logs []domain.ScanLog
	for rows.Next() {
		var log domain.ScanLog
		if err := rows.Scan(&log.ID, &log.ScannedValue, &log.CreatedAt); err != nil {
			zap.L().Error("can't scan scan log row", zap.Error(err))
			return nil, store.ReadError(err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}
