package viewservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/eligibility"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
)

// errMissingWallet means a registered user has no balances row. Registration creates
// both in one transaction, so this is a broken invariant rather than a client error.
var errMissingWallet = errors.New("wallet is missing")

type Catalog interface {
	VideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type BalanceRepo interface {
	LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
}

type ViewRepo interface {
	Create(ctx context.Context, view *domain.ViewEvent) (*domain.ViewEvent, error)
}

type Counter interface {
	Usage(ctx context.Context, wallet *domain.Balance, ip string, now time.Time) (ratelimit.Usage, error)
}

type Ledger interface {
	LastEarnedAt(ctx context.Context, userID int, videoID string, now time.Time) (*time.Time, error)
	CreditForView(ctx context.Context, userID int, videoID string, viewID int64, amount int64, now time.Time) (*domain.EarningRecord, *domain.Balance, error)
}

type Cooldowns interface {
	Current(ctx context.Context, userID int) (*domain.Cooldown, error)
	Start(ctx context.Context, userID int, viewID int64, now time.Time) (*domain.Cooldown, error)
}

// View is a finished playback reported by the client.
type View struct {
	UserID    int
	VideoID   string
	IP        string
	UserAgent string
	StartedAt time.Time
	EndedAt   time.Time
	Completed bool
}

// Result is what an evaluated view produced. Earning, Balance and Cooldown are set only
// when the view was allowed.
type Result struct {
	View     *domain.ViewEvent
	Earning  *domain.EarningRecord
	Balance  *domain.Balance
	Cooldown *domain.Cooldown
}

type Service struct {
	catalog   Catalog
	users     UserRepo
	balances  BalanceRepo
	views     ViewRepo
	counter   Counter
	ledger    Ledger
	cooldowns Cooldowns
	gate      *eligibility.Gate
	txManager pg.TXManager
	clock     clock.Clock
	metrics   *metrics.Metrics
}

type Deps struct {
	Catalog   Catalog
	Users     UserRepo
	Balances  BalanceRepo
	Views     ViewRepo
	Counter   Counter
	Ledger    Ledger
	Cooldowns Cooldowns
	Gate      *eligibility.Gate
	TXManager pg.TXManager
	Clock     clock.Clock
	Metrics   *metrics.Metrics
}

func New(d Deps) *Service {
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	return &Service{
		catalog:   d.Catalog,
		users:     d.Users,
		balances:  d.Balances,
		views:     d.Views,
		counter:   d.Counter,
		ledger:    d.Ledger,
		cooldowns: d.Cooldowns,
		gate:      d.Gate,
		txManager: d.TXManager,
		clock:     d.Clock,
		metrics:   d.Metrics,
	}
}

// SubmitView evaluates a finished view and, when eligible, credits the reward and starts
// the cooldown. The snapshot, the decision, the view record, the credit and the cooldown
// share one transaction serialized on the user's wallet row.
//
// A denied view is still recorded: the result carries the stored view and the error is
// the policy denial.
func (s *Service) SubmitView(ctx context.Context, in View) (*Result, error) {
	now := s.clock.Now()

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	in.VideoID = strings.TrimSpace(in.VideoID)
	if in.VideoID == "" || !in.Completed {
		return nil, domain.ErrViewIncomplete
	}
	if !in.StartedAt.IsZero() && !in.EndedAt.IsZero() && in.EndedAt.Before(in.StartedAt) {
		return nil, domain.ErrViewIncomplete
	}
	if in.EndedAt.IsZero() {
		in.EndedAt = now
	}
	if in.StartedAt.IsZero() {
		in.StartedAt = in.EndedAt
	}

	video, err := s.catalog.VideoMetadata(ctx, in.VideoID)
	if err != nil {
		return nil, err
	}
	if !video.IsActive {
		return nil, domain.ErrVideoUnavailable
	}

	var (
		result   = &Result{}
		decision error
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		*result = Result{}
		decision = nil

		wallet, err := s.balances.LockUserBalance(ctx, in.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %d: %w", in.UserID, errMissingWallet)
		}
		if err != nil {
			return err
		}

		usage, err := s.counter.Usage(ctx, wallet, in.IP, now)
		if err != nil {
			return err
		}

		last, err := s.ledger.LastEarnedAt(ctx, in.UserID, in.VideoID, now)
		if err != nil {
			return err
		}

		active, err := s.cooldowns.Current(ctx, in.UserID)
		if err != nil {
			return err
		}

		decision = s.gate.Evaluate(eligibility.Snapshot{
			DailyCount:     usage.UserDay,
			DailyDay:       usage.UserDayOf,
			IPViews:        usage.IPTrailing,
			LastEarnedAt:   last,
			ActiveCooldown: active,
		}, now)

		result.View, err = s.views.Create(ctx, &domain.ViewEvent{
			UserID:     in.UserID,
			VideoID:    in.VideoID,
			IP:         in.IP,
			UserAgent:  in.UserAgent,
			StartedAt:  in.StartedAt,
			EndedAt:    in.EndedAt,
			Completed:  in.Completed,
			Allowed:    decision == nil,
			DenyReason: domain.DenyReason(decision),
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}
		if decision != nil {
			return nil
		}

		result.Earning, result.Balance, err = s.ledger.CreditForView(ctx, in.UserID, in.VideoID, result.View.ID, video.Reward, now)
		if err != nil {
			return err
		}

		result.Cooldown, err = s.cooldowns.Start(ctx, in.UserID, result.View.ID, now)
		return err
	})
	if err != nil {
		switch {
		case lostRace(err):
			s.metrics.ViewDecision(domain.DenyReason(err))
			zap.L().Info("view lost a race", zap.Int("user_id", in.UserID), zap.String("video_id", in.VideoID), zap.Error(err))
		case domain.IsPolicyDenial(err):
			s.metrics.ViewDecision(domain.DenyReason(err))
			zap.L().Info("view rejected", zap.Int("user_id", in.UserID), zap.String("video_id", in.VideoID), zap.Error(err))
		default:
			zap.L().Error("failed to submit view", zap.Int("user_id", in.UserID), zap.Error(err))
		}
		return nil, err
	}

	if decision != nil {
		s.metrics.ViewDecision(domain.DenyReason(decision))
		zap.L().Info("view denied",
			zap.Int("user_id", in.UserID),
			zap.String("video_id", in.VideoID),
			zap.String("ip", in.IP),
			zap.String("reason", domain.DenyReason(decision)),
		)
		return result, decision
	}

	s.metrics.ViewDecision("allowed")
	s.metrics.Earned(result.Earning.Amount)
	zap.L().Info("view earned",
		zap.Int("user_id", in.UserID),
		zap.String("video_id", in.VideoID),
		zap.Int64("amount", result.Earning.Amount),
	)
	return result, nil
}

// lostRace reports the denials a concurrent request of the same user can cause after the
// gate allowed the view: the earning exclusion constraint and the single active cooldown
// index.
func lostRace(err error) bool {
	return errors.Is(err, domain.ErrDuplicateWithinWindow) || errors.Is(err, domain.ErrCooldownActive)
}
