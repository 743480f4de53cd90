package memberrepo

import (
	"context"
	"errors"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/store"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const memberColumns = `id, qr_code, name, member_type_id, points, total_scans, points_to_reward, reward_due, reward_earned_at, last_scan_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMember(row pgx.Row, m *domain.Member) error {
	return row.Scan(&m.ID, &m.QRCode, &m.Name, &m.MemberTypeID, &m.Points, &m.TotalScans, &m.PointsToReward, &m.RewardDue, &m.RewardEarnedAt, &m.LastScanAt)
}

// FindByQRCode returns every member holding the code. The ledger engine
// treats more than one match as a data-integrity fault, so uniqueness is
// not assumed here.
func (r *Repository) FindByQRCode(ctx context.Context, code string) ([]domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE qr_code = $1
    `
	rows, err := r.db.Query(ctx, query, code)
	if err != nil {
		zap.L().Error("can't find member by qr code", zap.Error(err))
		return nil, store.ReadError(err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := scanMember(rows, &m); err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, store.ReadError(err)
		}
		members = append(members, m)
	}
	return members, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `
        SELECT ` + memberColumns + `
        FROM members
        WHERE id = $1
    `
	var m domain.Member
	err := scanMember(r.db.QueryRow(ctx, query, id), &m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get member", zap.Error(err))
		return nil, store.ReadError(err)
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
        INSERT INTO members (qr_code, name, member_type_id, points, total_scans, points_to_reward, reward_due)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		member.QRCode, member.Name, member.MemberTypeID,
		member.Points, member.TotalScans, member.PointsToReward, member.RewardDue,
	).Scan(&member.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, store.ErrValidation
		}
		zap.L().Error("can't create member", zap.Error(err))
		return nil, store.WriteError(err)
	}
	return member, nil
}

// Update commits the new member state with an optimistic precondition on
// the previously read snapshot. A precondition miss surfaces as
// store.ErrConflict so the caller can tell a lost race from a transport
// failure.
func (r *Repository) Update(ctx context.Context, updated *domain.Member, prev *domain.Member) error {
	query := `
        UPDATE members
        SET points = $1, total_scans = $2, points_to_reward = $3, reward_due = $4, reward_earned_at = $5, last_scan_at = $6
        WHERE id = $7 AND points = $8 AND total_scans = $9
    `
	tag, err := r.db.Exec(ctx, query,
		updated.Points, updated.TotalScans, updated.PointsToReward,
		updated.RewardDue, updated.RewardEarnedAt, updated.LastScanAt,
		prev.ID, prev.Points, prev.TotalScans,
	)
	if err != nil {
		zap.L().Error("can't update member", zap.Error(err))
		return store.WriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrConflict
	}
	return nil
}

// ClearReward marks the member's due reward as handed over.
func (r *Repository) ClearReward(ctx context.Context, id int) error {
	query := `
        UPDATE members
        SET reward_due = FALSE, reward_earned_at = NULL
        WHERE id = $1 AND reward_due = TRUE
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't clear member reward", zap.Error(err))
		return store.WriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrConflict
	}
	return nil
}
