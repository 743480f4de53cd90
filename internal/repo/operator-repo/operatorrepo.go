package operatorrepo

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

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Operator, error) {
	var op domain.Operator
	err := r.db.QueryRow(ctx, "SELECT id, login, password_hash FROM operators WHERE login = $1", login).Scan(&op.ID, &op.Login, &op.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find operator", zap.Error(err))
		return nil, store.ReadError(err)
	}
	return &op, nil
}

func (r *Repository) Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error) {
	query := `
		INSERT INTO operators (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, op.Login, op.PasswordHash).Scan(&op.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, store.ErrValidation
		}
		zap.L().Error("can't save operator", zap.Error(err))
		return nil, store.WriteError(err)
	}
	return op, nil
}
