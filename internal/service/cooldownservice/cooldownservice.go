package cooldownservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

type Repo interface {
	Create(ctx context.Context, c *domain.Cooldown) error
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Cooldown, error)
	FindActiveByUser(ctx context.Context, userID int) (*domain.Cooldown, error)
	Finish(ctx context.Context, id uuid.UUID, status domain.CooldownStatus, now time.Time) error
	InterruptLapsed(ctx context.Context, userID int, now time.Time) (int64, error)
	FindStale(ctx context.Context, grace time.Duration, now time.Time, limit int) ([]domain.Cooldown, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
	metrics   *metrics.Metrics
	duration  time.Duration
	timeout   time.Duration
}

// New builds the cooldown state machine. duration is the rest period started after every
// earning; an active cooldown left unconfirmed for duration+timeout is interrupted by the reaper.
func New(repo Repo, txManager pg.TXManager, m *metrics.Metrics, duration, timeout time.Duration) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		metrics:   m,
		duration:  duration,
		timeout:   timeout,
	}
}

// Start opens a new active cooldown for the user. Active cooldowns that already ran their
// full duration are closed as interrupted first.
func (s *Service) Start(ctx context.Context, userID int, viewID int64, now time.Time) (*domain.Cooldown, error) {
	cooldown := &domain.Cooldown{
		ID:        uuid.New(),
		UserID:    userID,
		ViewID:    viewID,
		Status:    domain.CooldownActive,
		StartedAt: now,
		Duration:  s.duration,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lapsed, err := s.repo.InterruptLapsed(ctx, userID, now)
		if err != nil {
			return err
		}
		if lapsed > 0 {
			pg.AfterCommit(ctx, func() {
				for i := int64(0); i < lapsed; i++ {
					s.metrics.CooldownTransition(string(domain.CooldownInterrupted), "system")
				}
			})
		}

		active, err := s.repo.FindActiveByUser(ctx, userID)
		if err != nil {
			return err
		}
		if active != nil {
			return &domain.CooldownError{CooldownID: active.ID, Remaining: active.Remaining(now)}
		}

		if err := s.repo.Create(ctx, cooldown); err != nil {
			return err
		}
		pg.AfterCommit(ctx, func() {
			s.metrics.CooldownTransition(string(domain.CooldownActive), "system")
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrCooldownActive) {
			zap.L().Info("cooldown already active", zap.Int("user_id", userID))
		} else {
			zap.L().Error("failed to start cooldown", zap.Int("user_id", userID), zap.Error(err))
		}
		return nil, err
	}

	return cooldown, nil
}

// Complete confirms the user waited out the cooldown.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, userID int, now time.Time) (*domain.Cooldown, error) {
	return s.finish(ctx, id, userID, domain.CooldownCompleted, now)
}

// Interrupt ends the cooldown early, for example when the client navigates away.
func (s *Service) Interrupt(ctx context.Context, id uuid.UUID, userID int, now time.Time) (*domain.Cooldown, error) {
	return s.finish(ctx, id, userID, domain.CooldownInterrupted, now)
}

func (s *Service) finish(ctx context.Context, id uuid.UUID, userID int, status domain.CooldownStatus, now time.Time) (*domain.Cooldown, error) {
	var cooldown *domain.Cooldown
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		c, err := s.repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		if c.UserID != userID {
			return domain.ErrNotOwner
		}
		if c.Status != domain.CooldownActive {
			return domain.ErrAlreadyTerminal
		}
		if status == domain.CooldownCompleted {
			if left := c.Remaining(now); left > 0 {
				return &domain.TooEarlyError{Remaining: left}
			}
		}

		if err := s.repo.Finish(ctx, id, status, now); err != nil {
			return err
		}
		c.Status = status
		c.EndedAt = &now
		if status == domain.CooldownCompleted {
			c.CompletedAt = &now
		}
		cooldown = c
		return nil
	})
	if err != nil {
		if domain.IsPolicyDenial(err) {
			zap.L().Info("cooldown transition denied", zap.String("cooldown_id", id.String()),
				zap.String("to", string(status)), zap.Error(err))
		} else {
			zap.L().Error("failed to finish cooldown", zap.String("cooldown_id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	s.metrics.CooldownTransition(string(status), "user")
	return cooldown, nil
}

// Current returns the user's active cooldown, or nil when there is none.
func (s *Service) Current(ctx context.Context, userID int) (*domain.Cooldown, error) {
	c, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get current cooldown", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// FindStale lists active cooldowns left unconfirmed past their duration plus the timeout.
func (s *Service) FindStale(ctx context.Context, now time.Time, limit int) ([]domain.Cooldown, error) {
	return s.repo.FindStale(ctx, s.timeout, now, limit)
}

// ExpireStale interrupts a cooldown on behalf of the system. Losing the race against the
// user's own Complete or Interrupt is not an error.
func (s *Service) ExpireStale(ctx context.Context, id uuid.UUID, now time.Time) error {
	err := s.repo.Finish(ctx, id, domain.CooldownInterrupted, now)
	if errors.Is(err, domain.ErrAlreadyTerminal) {
		return nil
	}
	if err != nil {
		return err
	}
	s.metrics.CooldownTransition(string(domain.CooldownInterrupted), "reaper")
	return nil
}
