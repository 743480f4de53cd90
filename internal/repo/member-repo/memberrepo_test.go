package memberrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/store"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var memberCols = []string{"id", "qr_code", "name", "member_type_id", "points", "total_scans", "points_to_reward", "reward_due", "reward_earned_at", "last_scan_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByQRCode(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		expectErr bool
		result    []domain.Member
	}{
		{
			name: "Member exists",
			code: "code-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(memberCols).
					AddRow(1, "code-1", "Jane", 5, 2, 12, 8, false, nil, &now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, qr_code, name, member_type_id, points, total_scans, points_to_reward, reward_due, reward_earned_at, last_scan_at FROM members WHERE qr_code = $1")).
					WithArgs("code-1").
					WillReturnRows(rows)
			},
			result: []domain.Member{
				{ID: 1, QRCode: "code-1", Name: "Jane", MemberTypeID: 5, Points: 2, TotalScans: 12, PointsToReward: 8, LastScanAt: &now},
			},
		},
		{
			name: "No member holds the code",
			code: "code-9",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, qr_code, name, member_type_id, points, total_scans, points_to_reward, reward_due, reward_earned_at, last_scan_at FROM members WHERE qr_code = $1")).
					WithArgs("code-9").
					WillReturnRows(pgxmock.NewRows(memberCols))
			},
			result: nil,
		},
		{
			name: "Database error",
			code: "code-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, qr_code, name, member_type_id, points, total_scans, points_to_reward, reward_due, reward_earned_at, last_scan_at FROM members WHERE qr_code = $1")).
					WithArgs("code-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByQRCode(context.Background(), tt.code)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	prev := &domain.Member{ID: 1, Points: 2, TotalScans: 12}
	updated := &domain.Member{ID: 1, Points: 3, TotalScans: 13, PointsToReward: 7, LastScanAt: &now}

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Snapshot matches",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET points = $1, total_scans = $2, points_to_reward = $3, reward_due = $4, reward_earned_at = $5, last_scan_at = $6 WHERE id = $7 AND points = $8 AND total_scans = $9")).
					WithArgs(3, 13, 7, false, (*time.Time)(nil), &now, 1, 2, 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Snapshot stale",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET")).
					WithArgs(3, 13, 7, false, (*time.Time)(nil), &now, 1, 2, 12).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: store.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET")).
					WithArgs(3, 13, 7, false, (*time.Time)(nil), &now, 1, 2, 12).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), updated, prev)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ClearReward(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Reward due", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET reward_due = FALSE, reward_earned_at = NULL WHERE id = $1 AND reward_due = TRUE")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.ClearReward(context.Background(), 1))
	})

	t.Run("No reward due", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE members SET reward_due = FALSE")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.ClearReward(context.Background(), 1), store.ErrConflict)
	})
}
