package withdrawalservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/pkg/validate"
)

const defaultListLimit = 100

type BalanceRepo interface {
	LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Reserve(ctx context.Context, userID int, amount int64) (*domain.Balance, error)
	Release(ctx context.Context, userID int, amount int64) (*domain.Balance, error)
	Consume(ctx context.Context, userID int, amount int64) (*domain.Balance, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	Resolve(ctx context.Context, withdrawal *domain.Withdrawal) error
	GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	List(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error)
	Totals(ctx context.Context, status domain.WithdrawalStatus) (domain.Totals, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdatePaymentInfo(ctx context.Context, userID int, method string, details map[string]string) error
}

type EarningTotals interface {
	Totals(ctx context.Context) (domain.Totals, error)
}

type Service struct {
	balanceRepo    BalanceRepo
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
	earnings       EarningTotals
	txManager      pg.TXManager
	metrics        *metrics.Metrics
	minAmount      int64
}

func New(balanceRepo BalanceRepo, withdrawalRepo WithdrawalRepo, userRepo UserRepo, earnings EarningTotals,
	txManager pg.TXManager, m *metrics.Metrics, minAmount int64) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		earnings:       earnings,
		txManager:      txManager,
		metrics:        m,
		minAmount:      minAmount,
	}
}

// RequestWithdrawal reserves amount on the wallet and files a pending request. When the
// request names neither a method nor details, the user's saved payment info is used.
func (s *Service) RequestWithdrawal(ctx context.Context, userID int, amount int64, method string, details map[string]string, now time.Time) (*domain.Withdrawal, error) {
	if amount <= 0 || amount < s.minAmount {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	if method == "" && len(details) == 0 {
		method, details = user.PaymentMethod, user.PaymentDetails
	}
	if method == "" || len(details) == 0 {
		return nil, domain.ErrMissingPaymentInfo
	}
	if err := validate.PaymentDetails(method, details); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPaymentDetails, err)
	}

	withdrawal := &domain.Withdrawal{
		ID:             uuid.New(),
		UserID:         userID,
		Amount:         amount,
		PaymentMethod:  method,
		PaymentDetails: details,
		Status:         domain.WithdrawalPending,
		CreatedAt:      now,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.balanceRepo.LockUserBalance(ctx, userID)
		if err != nil {
			return err
		}
		if amount > wallet.Balance {
			return domain.ErrInsufficientBalance
		}
		if _, err := s.balanceRepo.Reserve(ctx, userID, amount); err != nil {
			return err
		}
		_, err = s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
		return err
	})
	if err != nil {
		if domain.IsPolicyDenial(err) {
			zap.L().Info("withdrawal denied", zap.Int("user_id", userID), zap.Error(err))
		} else {
			zap.L().Error("failed to request withdrawal", zap.Int("user_id", userID), zap.Error(err))
		}
		return nil, err
	}

	s.metrics.Withdrawal(string(domain.WithdrawalPending))
	zap.L().Info("withdrawal requested", zap.Int("user_id", userID), zap.String("withdrawal_id", withdrawal.ID.String()))
	return withdrawal, nil
}

// Resolve settles a pending withdrawal. Completed drops the reserved amount, rejected
// returns it to the spendable balance.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, outcome domain.WithdrawalStatus, notes string, now time.Time) (*domain.Withdrawal, error) {
	if outcome != domain.WithdrawalCompleted && outcome != domain.WithdrawalRejected {
		return nil, domain.ErrInvalidStatus
	}

	var resolved *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.withdrawalRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if wd == nil {
			return domain.ErrNotFound
		}
		if wd.Status != domain.WithdrawalPending {
			return domain.ErrAlreadyTerminal
		}

		if _, err := s.balanceRepo.LockUserBalance(ctx, wd.UserID); err != nil {
			return err
		}
		if outcome == domain.WithdrawalCompleted {
			_, err = s.balanceRepo.Consume(ctx, wd.UserID, wd.Amount)
		} else {
			_, err = s.balanceRepo.Release(ctx, wd.UserID, wd.Amount)
		}
		if err != nil {
			return err
		}

		wd.Status = outcome
		wd.Notes = notes
		wd.ProcessedAt = &now
		if err := s.withdrawalRepo.Resolve(ctx, wd); err != nil {
			return err
		}
		resolved = wd
		return nil
	})
	if err != nil {
		if domain.IsPolicyDenial(err) {
			zap.L().Info("withdrawal resolution denied", zap.String("withdrawal_id", id.String()), zap.Error(err))
		} else {
			zap.L().Error("failed to resolve withdrawal", zap.String("withdrawal_id", id.String()), zap.Error(err))
		}
		return nil, err
	}

	s.metrics.Withdrawal(string(outcome))
	return resolved, nil
}

func (s *Service) UpdatePaymentInfo(ctx context.Context, userID int, method string, details map[string]string) error {
	if method == "" || len(details) == 0 {
		return domain.ErrMissingPaymentInfo
	}
	if err := validate.PaymentDetails(method, details); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidPaymentDetails, err)
	}
	if err := s.userRepo.UpdatePaymentInfo(ctx, userID, method, details); err != nil {
		zap.L().Error("failed to update payment info", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// ListWithdrawals is the admin view. An empty status lists every withdrawal.
func (s *Service) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error) {
	switch status {
	case "", domain.WithdrawalPending, domain.WithdrawalCompleted, domain.WithdrawalRejected:
	default:
		return nil, domain.ErrInvalidStatus
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	withdrawals, err := s.withdrawalRepo.List(ctx, status, limit)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	earnings, err := s.earnings.Totals(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.withdrawalRepo.Totals(ctx, domain.WithdrawalCompleted)
	if err != nil {
		return nil, err
	}
	pending, err := s.withdrawalRepo.Totals(ctx, domain.WithdrawalPending)
	if err != nil {
		return nil, err
	}
	return &domain.Stats{
		Earnings:            earnings,
		CompletedWithdrawal: completed,
		PendingWithdrawal:   pending,
	}, nil
}
