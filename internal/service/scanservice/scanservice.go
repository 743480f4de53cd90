package scanservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/pkg/keymutex"
	"go.uber.org/zap"
)

type MemberRepo interface {
	FindByQRCode(ctx context.Context, code string) ([]domain.Member, error)
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	Update(ctx context.Context, updated *domain.Member, prev *domain.Member) error
}

type MemberTypeRepo interface {
	GetByID(ctx context.Context, id int) (*domain.MemberType, error)
	IncrementTotalScans(ctx context.Context, id int) error
}

type ScanLogRepo interface {
	Create(ctx context.Context, scannedValue string) (*domain.ScanLog, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.ScanLog, error)
}

type RedeemLogRepo interface {
	Create(ctx context.Context, memberID, rewardTypeID int) (*domain.RedeemLog, error)
}

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrAmbiguousCode      = errors.New("qr code matches more than one member")
	ErrMemberTypeNotFound = errors.New("member type not found")
)

// Commit step names reported by PartialCommitError.
const (
	StepMemberUpdate = "member update"
	StepTypeCounter  = "member type counter"
	StepScanLog      = "scan log"
	StepRedeemLog    = "redeem log"
)

// PartialCommitError reports a scan whose write sequence failed after
// some records were already committed. The store has no multi-record
// transaction, so completed writes stay committed; the caller must
// reconcile by hand rather than retry blindly.
type PartialCommitError struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("partial commit: %s failed after [%s]: %v", e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialCommitError) Unwrap() error {
	return e.Err
}

// ScanResult is returned for display at the scanning station.
type ScanResult struct {
	MemberTypeName         string
	MemberName             string
	PointsAfter            int
	ScansRequiredForReward int
	RewardDue              bool
}

type Service struct {
	members     MemberRepo
	memberTypes MemberTypeRepo
	scanLogs    ScanLogRepo
	redeemLogs  RedeemLogRepo

	locks *keymutex.KeyMutex
	now   func() time.Time
}

func New(members MemberRepo, memberTypes MemberTypeRepo, scanLogs ScanLogRepo, redeemLogs RedeemLogRepo) *Service {
	return &Service{
		members:     members,
		memberTypes: memberTypes,
		scanLogs:    scanLogs,
		redeemLogs:  redeemLogs,
		locks:       keymutex.New(),
		now:         time.Now,
	}
}

// ProcessScan resolves the scanned code to a member, applies the point
// increment and reward state, and appends the ledger records. Calls that
// resolve to the same member are serialized on a per-member lock; scans
// of different members run in parallel.
func (s *Service) ProcessScan(ctx context.Context, code string) (*ScanResult, error) {
	matches, err := s.members.FindByQRCode(ctx, code)
	if err != nil {
		return nil, err
	}
	switch {
	case len(matches) == 0:
		zap.L().Info("scan for unknown code", zap.String("code", code))
		return nil, ErrMemberNotFound
	case len(matches) > 1:
		zap.L().Error("qr code held by multiple members", zap.String("code", code), zap.Int("matches", len(matches)))
		return nil, ErrAmbiguousCode
	}

	memberID := matches[0].ID
	unlock := s.locks.Lock(memberID)
	defer unlock()

	// Re-read under the lock: a scan that lost the race to acquire it
	// must see the winner's committed increment, not the stale snapshot
	// from the code lookup.
	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	memberType, err := s.memberTypes.GetByID(ctx, member.MemberTypeID)
	if err != nil {
		return nil, err
	}
	if memberType == nil {
		zap.L().Error("member references missing type", zap.Int("memberID", member.ID), zap.Int("memberTypeID", member.MemberTypeID))
		return nil, ErrMemberTypeNotFound
	}

	now := s.now()
	newPoints := member.Points + 1
	remaining := memberType.ScansRequired - newPoints
	rewardDue := remaining <= 0

	updated := *member
	updated.TotalScans = member.TotalScans + 1
	updated.PointsToReward = remaining
	updated.RewardDue = rewardDue
	updated.LastScanAt = &now
	if rewardDue {
		updated.Points = 0
		// Keep the timestamp of the first unredeemed reward; a second
		// crossing before redemption must not overwrite it.
		if member.RewardEarnedAt == nil {
			updated.RewardEarnedAt = &now
		}
	} else {
		updated.Points = newPoints
	}

	if err := s.commit(ctx, &updated, member, memberType, code, rewardDue); err != nil {
		return nil, err
	}

	zap.L().Info("scan accepted",
		zap.Int("memberID", member.ID),
		zap.Int("points", updated.Points),
		zap.Bool("rewardDue", rewardDue),
	)

	return &ScanResult{
		MemberTypeName:         memberType.Name,
		MemberName:             member.Name,
		PointsAfter:            updated.Points,
		ScansRequiredForReward: memberType.ScansRequired,
		RewardDue:              rewardDue,
	}, nil
}

// RecentScans returns the scan activity of the trailing window, newest
// first.
func (s *Service) RecentScans(ctx context.Context, window time.Duration) ([]domain.ScanLog, error) {
	return s.scanLogs.ListSince(ctx, s.now().Add(-window))
}

// commit issues the write sequence in fixed order. The store offers no
// cross-record transaction: a mid-sequence failure leaves the earlier
// writes committed and is reported as a PartialCommitError naming them.
func (s *Service) commit(ctx context.Context, updated, prev *domain.Member, memberType *domain.MemberType, code string, rewardDue bool) error {
	if err := s.members.Update(ctx, updated, prev); err != nil {
		zap.L().Error("member update failed", zap.Int("memberID", prev.ID), zap.Error(err))
		return err
	}
	completed := []string{StepMemberUpdate}

	if err := s.memberTypes.IncrementTotalScans(ctx, memberType.ID); err != nil {
		return s.partial(completed, StepTypeCounter, err)
	}
	completed = append(completed, StepTypeCounter)

	if _, err := s.scanLogs.Create(ctx, code); err != nil {
		return s.partial(completed, StepScanLog, err)
	}
	completed = append(completed, StepScanLog)

	if rewardDue {
		if _, err := s.redeemLogs.Create(ctx, updated.ID, memberType.RewardTypeID); err != nil {
			return s.partial(completed, StepRedeemLog, err)
		}
	}
	return nil
}

func (s *Service) partial(completed []string, failed string, err error) error {
	pce := &PartialCommitError{Completed: completed, Failed: failed, Err: err}
	zap.L().Error("scan commit incomplete", zap.Strings("completed", completed), zap.String("failed", failed), zap.Error(err))
	return pce
}
