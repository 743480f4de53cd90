package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	svc := New(repo, hashService, jwtService)
	return svc, repo, hashService, jwtService
}

func TestService_Register(t *testing.T) {
	svc, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Registration succeeds",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(ctx, &domain.Operator{Login: "operator", PasswordHash: "hashed"}).
					Return(&domain.Operator{ID: 1, Login: "operator", PasswordHash: "hashed"}, nil)
			},
		},
		{
			name: "Login taken",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(&domain.Operator{ID: 1, Login: "operator"}, nil)
			},
			expectedErr: ErrLoginTaken,
		},
		{
			name: "Hashing fails",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("", errors.New("hash error"))
			},
			expectedErr: errors.New("hash error"),
		},
		{
			name: "Create fails",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(nil, nil)
				hashService.EXPECT().HashPassword("secret").Return("hashed", nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			op, err := svc.Register(ctx, "operator", "secret")
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr.Error())
				assert.Nil(t, op)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, op.ID)
			}
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	svc, repo, hashService, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(&domain.Operator{ID: 1, Login: "operator", PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(ctx, "operator").Return(&domain.Operator{ID: 1, Login: "operator", PasswordHash: "hashed"}, nil)
				hashService.EXPECT().ComparePassword("hashed", "secret").Return(false)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			op, err := svc.Authenticate(ctx, "operator", "secret")
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, op)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, op.ID)
			}
		})
	}
}

func TestService_GenerateToken(t *testing.T) {
	svc, _, _, jwtService := NewMock(t)

	t.Run("Token issued", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)
		token, err := svc.GenerateToken(1)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Signing fails", func(t *testing.T) {
		jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("sign error"))
		token, err := svc.GenerateToken(1)
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
