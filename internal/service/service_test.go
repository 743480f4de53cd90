package service

import (
	"testing"

	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/repo"
	"github.com/akostin/punchpass/internal/service/syncservice"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	source := syncservice.NewMockSource(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	services := New(repos, source, txManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ScanService)
	assert.NotNil(t, services.MemberService)
	assert.NotNil(t, services.SyncService)
}
