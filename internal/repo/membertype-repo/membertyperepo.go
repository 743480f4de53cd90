package membertyperepo

import (
	"context"
	"errors"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/store"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.MemberType, error) {
	query := `
        SELECT id, name, scans_required, reward_type_id, total_scans
        FROM member_types
        WHERE id = $1
    `
	var mt domain.MemberType
	err := r.db.QueryRow(ctx, query, id).Scan(&mt.ID, &mt.Name, &mt.ScansRequired, &mt.RewardTypeID, &mt.TotalScans)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get member type", zap.Error(err))
		return nil, store.ReadError(err)
	}
	return &mt, nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.MemberType, error) {
	query := `
        SELECT id, name, scans_required, reward_type_id, total_scans
        FROM member_types
        WHERE name = $1
    `
	var mt domain.MemberType
	err := r.db.QueryRow(ctx, query, name).Scan(&mt.ID, &mt.Name, &mt.ScansRequired, &mt.RewardTypeID, &mt.TotalScans)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find member type by name", zap.Error(err))
		return nil, store.ReadError(err)
	}
	return &mt, nil
}

// IncrementTotalScans bumps the per-type scan counter atomically at the
// store, so concurrent scans of different members sharing a type never
// lose an increment.
func (r *Repository) IncrementTotalScans(ctx context.Context, id int) error {
	query := `
        UPDATE member_types
        SET total_scans = total_scans + 1
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment member type scans", zap.Error(err))
		return store.WriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
