package pendingmemberrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/store"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const pendingColumns = `id, airtable_id, name, email, membership_type, qr_code_url, status, source, created_at, processed_at, processed_by`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) scanRows(rows pgx.Rows) ([]domain.PendingMember, error) {
	var pending []domain.PendingMember
	for rows.Next() {
		var p domain.PendingMember
		err := rows.Scan(&p.ID, &p.AirtableID, &p.Name, &p.Email, &p.MembershipType, &p.QRCodeURL, &p.Status, &p.Source, &p.CreatedAt, &p.ProcessedAt, &p.ProcessedBy)
		if err != nil {
			zap.L().Error("can't scan pending member row", zap.Error(err))
			return nil, store.ReadError(err)
		}
		pending = append(pending, p)
	}
	return pending, nil
}

// FindAll returns every application regardless of status. The
// reconciliation engine dedups against the full set, including already
// processed applications.
func (r *Repository) FindAll(ctx context.Context) ([]domain.PendingMember, error) {
	query := `
        SELECT ` + pendingColumns + `
        FROM pending_members
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending members", zap.Error(err))
		return nil, store.ReadError(err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *Repository) List(ctx context.Context, params store.ListParams) ([]domain.PendingMember, error) {
	query := `
        SELECT ` + pendingColumns + `
        FROM pending_members
    `
	args := make([]any, 0, 3)
	if status, ok := params.Filter["status"]; ok {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, params.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list pending members", zap.Error(err))
		return nil, store.ReadError(err)
	}
	defer rows.Close()
	return r.scanRows(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.PendingMember, error) {
	query := `
        SELECT ` + pendingColumns + `
        FROM pending_members
        WHERE id = $1
    `
	var p domain.PendingMember
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.AirtableID, &p.Name, &p.Email, &p.MembershipType, &p.QRCodeURL, &p.Status, &p.Source, &p.CreatedAt, &p.ProcessedAt, &p.ProcessedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get pending member", zap.Error(err))
		return nil, store.ReadError(err)
	}
	return &p, nil
}

// Create inserts one application. A uniqueness violation on airtable_id
// or lower(email) maps to store.ErrValidation so concurrent sync runs
// can treat it as an ordinary duplicate.
func (r *Repository) Create(ctx context.Context, pending *domain.PendingMember) (*domain.PendingMember, error) {
	query := `
        INSERT INTO pending_members (airtable_id, name, email, membership_type, qr_code_url, status, source)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		pending.AirtableID, pending.Name, pending.Email,
		pending.MembershipType, pending.QRCodeURL, pending.Status, pending.Source,
	).Scan(&pending.ID, &pending.CreatedAt)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, store.ErrValidation
		}
		zap.L().Error("can't create pending member", zap.Error(err))
		return nil, store.WriteError(err)
	}
	return pending, nil
}

// UpdateStatus transitions a pending application. The WHERE clause keeps
// the transition one-shot: a second approve or reject loses the race and
// gets store.ErrConflict.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string, operatorID int) error {
	query := `
        UPDATE pending_members
        SET status = $1, processed_at = now(), processed_by = $2
        WHERE id = $3 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, operatorID, id)
	if err != nil {
		zap.L().Error("can't update pending member status", zap.Error(err))
		return store.WriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrConflict
	}
	return nil
}
