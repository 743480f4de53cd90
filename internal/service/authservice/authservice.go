package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Operator, error)
	Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
}

type Service struct {
	operatorRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		operatorRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

var ErrLoginTaken = errors.New("login already taken")

const tokenTTL = 8 * time.Hour

func (s *Service) Register(ctx context.Context, login, password string) (*domain.Operator, error) {
	existing, err := s.operatorRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find operator: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("operator already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	op := &domain.Operator{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newOp, err := s.operatorRepo.Create(ctx, op)
	if err != nil {
		zap.L().Error("can't create operator: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("operator successfully registered", zap.String("login", login))
	return newOp, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Operator, error) {
	op, err := s.operatorRepo.FindByLogin(ctx, login)
	if err != nil || op == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(op.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("operator successfully authenticated", zap.String("login", login))
	return op, nil
}

func (s *Service) GenerateToken(operatorID int) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(operatorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
