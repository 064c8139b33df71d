package ledgerservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/eligibility"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const (
	statsDays      = 30
	defaultHistory = 100
)

type BalanceRepo interface {
	GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Credit(ctx context.Context, userID int, amount int64, day time.Time) (*domain.Balance, error)
}

type EarningRepo interface {
	Create(ctx context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error)
	LastEarnedAt(ctx context.Context, userID int, videoID string, since time.Time) (*time.Time, error)
	ListByUser(ctx context.Context, userID int, limit int) ([]domain.EarningRecord, error)
	ListSince(ctx context.Context, userID int, since time.Time) ([]domain.EarningRecord, error)
	Totals(ctx context.Context) (domain.Totals, error)
}

type Service struct {
	balanceRepo BalanceRepo
	earningRepo EarningRepo
	txManager   pg.TXManager
	window      time.Duration
	location    *time.Location
}

func New(balanceRepo BalanceRepo, earningRepo EarningRepo, txManager pg.TXManager, window time.Duration, location *time.Location) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		balanceRepo: balanceRepo,
		earningRepo: earningRepo,
		txManager:   txManager,
		window:      window,
		location:    location,
	}
}

// CreditForView records one earning and adds it to the wallet. It runs in its own
// transaction or joins the caller's one, and takes the wallet lock before touching the
// 24h index so two credits of the same user never interleave.
func (s *Service) CreditForView(ctx context.Context, userID int, videoID string, viewID int64, amount int64, now time.Time) (*domain.EarningRecord, *domain.Balance, error) {
	if amount < 0 {
		return nil, nil, domain.ErrInvalidAmount
	}

	var (
		record *domain.EarningRecord
		wallet *domain.Balance
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.balanceRepo.LockUserBalance(ctx, userID); err != nil {
			return err
		}

		last, err := s.earningRepo.LastEarnedAt(ctx, userID, videoID, now.Add(-s.window))
		if err != nil {
			return err
		}
		if last != nil {
			return &domain.DuplicateError{RetryAt: last.Add(s.window)}
		}

		record, err = s.earningRepo.Create(ctx, &domain.EarningRecord{
			UserID:       userID,
			VideoID:      videoID,
			ViewID:       viewID,
			Amount:       amount,
			EarnedAt:     now,
			WindowEndsAt: now.Add(s.window),
		})
		if err != nil {
			return err
		}

		wallet, err = s.balanceRepo.Credit(ctx, userID, amount, eligibility.StartOfDay(now, s.location))
		return err
	})
	if err != nil {
		if domain.IsPolicyDenial(err) {
			zap.L().Info("credit denied", zap.Int("user_id", userID), zap.String("video_id", videoID), zap.Error(err))
		} else {
			zap.L().Error("failed to credit view", zap.Int("user_id", userID), zap.Error(err))
		}
		return nil, nil, err
	}
	return record, wallet, nil
}

func (s *Service) GetAvailableBalance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	return balance.Balance, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, domain.ErrNotFound
	}
	return balance, nil
}

func (s *Service) CreateBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateUserBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// LastEarnedAt is the latest earning of the pair inside the window ending at now.
func (s *Service) LastEarnedAt(ctx context.Context, userID int, videoID string, now time.Time) (*time.Time, error) {
	return s.earningRepo.LastEarnedAt(ctx, userID, videoID, now.Add(-s.window))
}

func (s *Service) GetEarnings(ctx context.Context, userID int, limit int) ([]domain.EarningRecord, error) {
	if limit <= 0 {
		limit = defaultHistory
	}
	records, err := s.earningRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch earnings", zap.Error(err))
		return nil, err
	}
	return records, nil
}

// GetDailyStats sums earnings per calendar day over the last 30 days, newest day first.
// Days without earnings are omitted.
func (s *Service) GetDailyStats(ctx context.Context, userID int, now time.Time) ([]domain.DailyEarnings, error) {
	since := eligibility.StartOfDay(now, s.location).AddDate(0, 0, -(statsDays - 1))
	records, err := s.earningRepo.ListSince(ctx, userID, since)
	if err != nil {
		zap.L().Error("failed to fetch earnings for stats", zap.Error(err))
		return nil, err
	}

	byDay := make(map[time.Time]*domain.DailyEarnings)
	for _, rec := range records {
		day := eligibility.StartOfDay(rec.EarnedAt, s.location)
		d, ok := byDay[day]
		if !ok {
			d = &domain.DailyEarnings{Day: day}
			byDay[day] = d
		}
		d.Amount += rec.Amount
		d.Count++
	}

	stats := make([]domain.DailyEarnings, 0, len(byDay))
	for _, d := range byDay {
		stats = append(stats, *d)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Day.After(stats[j].Day) })
	return stats, nil
}

func (s *Service) Totals(ctx context.Context) (domain.Totals, error) {
	totals, err := s.earningRepo.Totals(ctx)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("earning totals: %w", err)
	}
	return totals, nil
}

// ViewsToday is the wallet's earning count for the calendar day of now; a counter left
// over from an earlier day reads as zero.
func (s *Service) ViewsToday(b *domain.Balance, now time.Time) int {
	if !eligibility.SameDay(b.DailyViewDay, now, s.location) {
		return 0
	}
	return b.DailyViewCount
}
