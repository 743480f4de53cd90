package redeemlogrepo

import (
	"context"

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

// Create appends the reward-earned record. At most one is written per
// threshold-crossing scan.
func (r *Repository) Create(ctx context.Context, memberID, rewardTypeID int) (*domain.RedeemLog, error) {
	query := `
        INSERT INTO redeem_logs (member_id, reward_type_id)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	log := domain.RedeemLog{MemberID: memberID, RewardTypeID: rewardTypeID}
	err := r.db.QueryRow(ctx, query, memberID, rewardTypeID).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		zap.L().Error("can't create redeem log", zap.Error(err))
		return nil, store.WriteError(err)
	}
	return &log, nil
}

func (r *Repository) ListByMemberID(ctx context.Context, memberID int) ([]domain.RedeemLog, error) {
	query := `
        SELECT id, member_id, reward_type_id, created_at
        FROM redeem_logs
        WHERE member_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't list redeem logs", zap.Error(err))
		return nil, store.ReadError(err)
	}
	defer rows.Close()

	var logs []domain.RedeemLog
	for rows.Next() {
		var log domain.RedeemLog
		if err := rows.Scan(&log.ID, &log.MemberID, &log.RewardTypeID, &log.CreatedAt); err != nil {
			zap.L().Error("can't scan redeem log row", zap.Error(err))
			return nil, store.ReadError(err)
		}
		logs = append(logs, log)
	}
	return logs, nil
}
