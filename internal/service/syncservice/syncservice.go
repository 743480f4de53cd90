package syncservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/akostin/punchpass/internal/domain"
	"github.com/akostin/punchpass/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Candidate is one membership application as served by the external
// source.
type Candidate struct {
	ExternalID     string
	Name           string
	Email          string
	MembershipType string
	QRCodeURL      string
	CreatedAt      time.Time
}

// Source fetches the full external candidate set. Implementations must
// walk every page before returning.
type Source interface {
	FetchAll(ctx context.Context) ([]Candidate, error)
}

type PendingMemberRepo interface {
	FindAll(ctx context.Context) ([]domain.PendingMember, error)
	Create(ctx context.Context, pending *domain.PendingMember) (*domain.PendingMember, error)
}

var ErrExternalFetch = errors.New("external source fetch failed")

const sourceName = "airtable"

const createWorkers = 4

type SyncReport struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type Service struct {
	source  Source
	pending PendingMemberRepo
}

func New(source Source, pending PendingMemberRepo) *Service {
	return &Service{
		source:  source,
		pending: pending,
	}
}

// SyncPendingMembers imports external applications that are not yet
// known, deduplicating by external id and by lower-cased email. The
// batch is best effort per record: one failed insert is counted and
// logged, not fatal.
func (s *Service) SyncPendingMembers(ctx context.Context) (*SyncReport, error) {
	candidates, err := s.source.FetchAll(ctx)
	if err != nil {
		zap.L().Error("can't fetch external applications", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrExternalFetch, err)
	}

	existing, err := s.pending.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't read existing applications", zap.Error(err))
		return nil, err
	}

	knownIDs := make(map[string]struct{}, len(existing))
	knownEmails := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		knownIDs[p.AirtableID] = struct{}{}
		knownEmails[strings.ToLower(p.Email)] = struct{}{}
	}

	var created, skipped, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(createWorkers)
	for _, c := range candidates {
		c := c

		_, byID := knownIDs[c.ExternalID]
		_, byEmail := knownEmails[strings.ToLower(c.Email)]
		if byID || byEmail {
			skipped.Add(1)
			continue
		}

		g.Go(func() error {
			pending := &domain.PendingMember{
				AirtableID:     c.ExternalID,
				Name:           c.Name,
				Email:          c.Email,
				MembershipType: c.MembershipType,
				QRCodeURL:      c.QRCodeURL,
				Status:         domain.PendingStatusPending,
				Source:         sourceName,
			}
			if _, err := s.pending.Create(ctx, pending); err != nil {
				// A concurrent sync run may have inserted the same
				// application first; the store's uniqueness constraint
				// turns that into a duplicate, not an error.
				if errors.Is(err, store.ErrValidation) {
					skipped.Add(1)
					return nil
				}
				zap.L().Error("can't create pending member", zap.String("externalID", c.ExternalID), zap.Error(err))
				failed.Add(1)
				return nil
			}
			created.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	report := &SyncReport{
		Created: int(created.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	zap.L().Info("pending member sync finished",
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}
