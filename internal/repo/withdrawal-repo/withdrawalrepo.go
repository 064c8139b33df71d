package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const columns = `id, user_id, amount, payment_method, payment_details, status, notes, created_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.Withdrawal, error) {
	var wd domain.Withdrawal
	err := row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.PaymentMethod, &wd.PaymentDetails,
		&wd.Status, &wd.Notes, &wd.CreatedAt, &wd.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, wd *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (id, user_id, amount, payment_method, payment_details, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, wd.ID, wd.UserID, wd.Amount, wd.PaymentMethod, wd.PaymentDetails,
		wd.Status, wd.Notes, wd.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// LockByID reads a withdrawal FOR UPDATE. Returns nil when it does not exist.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + columns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	wd, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock withdrawal", zap.Error(err))
		return nil, err
	}
	return wd, nil
}

// Resolve stores the outcome of a pending withdrawal. Resolved rows are left untouched and
// reported as ErrAlreadyTerminal.
func (r *Repository) Resolve(ctx context.Context, wd *domain.Withdrawal) error {
	query := `
		UPDATE withdrawals
		SET status = $1, notes = $2, processed_at = $3
		WHERE id = $4 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, wd.Status, wd.Notes, wd.ProcessedAt, wd.ID)
	if err != nil {
		zap.L().Error("failed to resolve withdrawal", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyTerminal
	}
	return nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID int) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + columns + `
		FROM withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

// List returns withdrawals in the given status, or all of them when status is empty.
func (r *Repository) List(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + columns + `
		FROM withdrawals
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, string(status), limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		wd, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, *wd)
	}
	return withdrawals, rows.Err()
}

func (r *Repository) Totals(ctx context.Context, status domain.WithdrawalStatus) (domain.Totals, error) {
	var t domain.Totals
	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM withdrawals WHERE status = $1`
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&t.Amount, &t.Count); err != nil {
		zap.L().Error("failed to sum withdrawals", zap.Error(err))
		return domain.Totals{}, err
	}
	return t, nil
}
