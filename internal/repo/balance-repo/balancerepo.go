package balancerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const columns = `id, user_id, balance, total_earned, pending_withdrawal, daily_view_count, daily_view_day, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	err := row.Scan(&b.ID, &b.UserID, &b.Balance, &b.TotalEarned, &b.PendingWithdrawal,
		&b.DailyViewCount, &b.DailyViewDay, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `SELECT ` + columns + ` FROM balances WHERE user_id = $1`
	balance, err := scan(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
		INSERT INTO balances (user_id)
		VALUES ($1)
		RETURNING ` + columns
	balance, err := scan(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// LockUserBalance reads the wallet row FOR UPDATE. Every mutation of a user's money goes
// through this lock first, which serializes concurrent requests of the same user.
func (r *Repository) LockUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `SELECT ` + columns + ` FROM balances WHERE user_id = $1 FOR UPDATE`
	balance, err := scan(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet of user %d: %w", userID, domain.ErrNotFound)
		}
		zap.L().Error("failed to lock user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Credit adds amount to balance and total_earned and counts the view against day.
// The counter restarts at 1 when the stored day is a different one.
func (r *Repository) Credit(ctx context.Context, userID int, amount int64, day time.Time) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET balance = balance + $1,
			total_earned = total_earned + $1,
			daily_view_count = CASE WHEN daily_view_day = $2 THEN daily_view_count + 1 ELSE 1 END,
			daily_view_day = $2,
			updated_at = NOW()
		WHERE user_id = $3
		RETURNING ` + columns
	balance, err := scan(r.db.QueryRow(ctx, query, amount, day, userID))
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Reserve moves amount from balance to pending_withdrawal.
func (r *Repository) Reserve(ctx context.Context, userID int, amount int64) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET balance = balance - $1,
			pending_withdrawal = pending_withdrawal + $1,
			updated_at = NOW()
		WHERE user_id = $2
		RETURNING ` + columns
	balance, err := scan(r.db.QueryRow(ctx, query, amount, userID))
	if err != nil {
		if pg.IsCheckViolation(err) {
			return nil, domain.ErrInsufficientBalance
		}
		zap.L().Error("failed to reserve withdrawal", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Release returns a reserved amount to the spendable balance.
func (r *Repository) Release(ctx context.Context, userID int, amount int64) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET balance = balance + $1,
			pending_withdrawal = pending_withdrawal - $1,
			updated_at = NOW()
		WHERE user_id = $2
		RETURNING ` + columns
	balance, err := scan(r.db.QueryRow(ctx, query, amount, userID))
	if err != nil {
		zap.L().Error("failed to release withdrawal", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Consume drops a reserved amount once it has been paid out.
func (r *Repository) Consume(ctx context.Context, userID int, amount int64) (*domain.Balance, error) {
	query := `
		UPDATE balances
		SET pending_withdrawal = pending_withdrawal - $1,
			updated_at = NOW()
		WHERE user_id = $2
		RETURNING ` + columns
	balance, err := scan(r.db.QueryRow(ctx, query, amount, userID))
	if err != nil {
		zap.L().Error("failed to consume withdrawal", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
