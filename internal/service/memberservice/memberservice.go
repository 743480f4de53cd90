package memberservice

import (
	"context"
	"errors"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	ClearReward(ctx context.Context, id int) error
}

type MemberTypeRepo interface {
	FindByName(ctx context.Context, name string) (*domain.MemberType, error)
}

type PendingMemberRepo interface {
	List(ctx context.Context, params store.ListParams) ([]domain.PendingMember, error)
	GetByID(ctx context.Context, id int) (*domain.PendingMember, error)
	UpdateStatus(ctx context.Context, id int, status string, operatorID int) error
}

type RedeemLogRepo interface {
	ListByMemberID(ctx context.Context, memberID int) ([]domain.RedeemLog, error)
}

var (
	ErrMemberNotFound        = errors.New("member not found")
	ErrNoRewardDue           = errors.New("member has no reward due")
	ErrPendingNotFound       = errors.New("pending member not found")
	ErrAlreadyProcessed      = errors.New("pending member already processed")
	ErrUnknownMembershipType = errors.New("unknown membership type")
)

type Service struct {
	members     MemberRepo
	memberTypes MemberTypeRepo
	pending     PendingMemberRepo
	redeemLogs  RedeemLogRepo
	txManager   pg.TXManager
}

func New(members MemberRepo, memberTypes MemberTypeRepo, pending PendingMemberRepo, redeemLogs RedeemLogRepo, txManager pg.TXManager) *Service {
	return &Service{
		members:     members,
		memberTypes: memberTypes,
		pending:     pending,
		redeemLogs:  redeemLogs,
		txManager:   txManager,
	}
}

func (s *Service) GetMember(ctx context.Context, id int) (*domain.Member, []domain.RedeemLog, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if member == nil {
		return nil, nil, ErrMemberNotFound
	}
	redeems, err := s.redeemLogs.ListByMemberID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return member, redeems, nil
}

// RedeemReward hands over a due reward: the due flag and the earned-at
// timestamp are cleared so the next threshold crossing starts a fresh
// reward cycle.
func (s *Service) RedeemReward(ctx context.Context, memberID int) error {
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	if err := s.members.ClearReward(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrNoRewardDue
		}
		return err
	}
	zap.L().Info("reward redeemed", zap.Int("memberID", memberID))
	return nil
}

func (s *Service) ListPending(ctx context.Context, status string) ([]domain.PendingMember, error) {
	params := store.ListParams{}
	if status != "" {
		params.Filter = map[string]any{"status": status}
	}
	return s.pending.List(ctx, params)
}

// ApprovePending turns an application into a member with a freshly
// minted QR code. The status flip and the member insert share one
// transaction so an approval can't be half applied.
func (s *Service) ApprovePending(ctx context.Context, pendingID, operatorID int) (*domain.Member, error) {
	p, err := s.pending.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPendingNotFound
	}
	if p.Status != domain.PendingStatusPending {
		return nil, ErrAlreadyProcessed
	}

	memberType, err := s.memberTypes.FindByName(ctx, p.MembershipType)
	if err != nil {
		return nil, err
	}
	if memberType == nil {
		zap.L().Error("application names unknown membership type", zap.Int("pendingID", pendingID), zap.String("membershipType", p.MembershipType))
		return nil, ErrUnknownMembershipType
	}

	member := &domain.Member{
		QRCode:         uuid.NewString(),
		Name:           p.Name,
		MemberTypeID:   memberType.ID,
		PointsToReward: memberType.ScansRequired,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.pending.UpdateStatus(ctx, pendingID, domain.PendingStatusApproved, operatorID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrAlreadyProcessed
			}
			return err
		}
		if _, err := s.members.Create(ctx, member); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't approve pending member", zap.Int("pendingID", pendingID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("pending member approved", zap.Int("pendingID", pendingID), zap.Int("memberID", member.ID))
	return member, nil
}

func (s *Service) RejectPending(ctx context.Context, pendingID, operatorID int) error {
	err := s.pending.UpdateStatus(ctx, pendingID, domain.PendingStatusRejected, operatorID)
	if errors.Is(err, store.ErrConflict) {
		return ErrAlreadyProcessed
	}
	if err != nil {
		zap.L().Error("can't reject pending member", zap.Int("pendingID", pendingID), zap.Error(err))
		return err
	}
	zap.L().Info("pending member rejected", zap.Int("pendingID", pendingID))
	return nil
}
