package operatorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/store"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Operator found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "login", "password_hash"}).
			AddRow(1, "barista", "hashed")
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM operators WHERE login = $1")).
			WithArgs("barista").
			WillReturnRows(rows)

		op, err := repo.FindByLogin(context.Background(), "barista")
		assert.NoError(t, err)
		assert.Equal(t, 1, op.ID)
		assert.Equal(t, "barista", op.Login)
	})

	t.Run("Operator not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM operators")).
			WithArgs("ghost").
			WillReturnRows(pgxmock.NewRows([]string{"id", "login", "password_hash"}))

		op, err := repo.FindByLogin(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, op)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash FROM operators")).
			WithArgs("barista").
			WillReturnError(errors.New("database error"))

		op, err := repo.FindByLogin(context.Background(), "barista")
		assert.Error(t, err)
		assert.Nil(t, op)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Operator created", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO operators (login, password_hash) VALUES ($1, $2) RETURNING id")).
			WithArgs("barista", "hashed").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		op, err := repo.Create(context.Background(), &domain.Operator{Login: "barista", PasswordHash: "hashed"})
		assert.NoError(t, err)
		assert.Equal(t, 7, op.ID)
	})

	t.Run("Login already taken", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO operators")).
			WithArgs("barista", "hashed").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		op, err := repo.Create(context.Background(), &domain.Operator{Login: "barista", PasswordHash: "hashed"})
		assert.ErrorIs(t, err, store.ErrValidation)
		assert.Nil(t, op)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO operators")).
			WithArgs("barista", "hashed").
			WillReturnError(errors.New("database error"))

		op, err := repo.Create(context.Background(), &domain.Operator{Login: "barista", PasswordHash: "hashed"})
		assert.Error(t, err)
		assert.Nil(t, op)
	})
}
