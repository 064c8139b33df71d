package earningrepo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const windowConstraint = "earnings_one_per_window"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends an earning. A record overlapping another earning of the same user and
// video is rejected by the storage constraint and reported as a duplicate.
func (r *Repository) Create(ctx context.Context, rec *domain.EarningRecord) (*domain.EarningRecord, error) {
	query := `
		INSERT INTO earnings (user_id, video_id, view_id, amount, earned_at, window_ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, rec.UserID, rec.VideoID, rec.ViewID, rec.Amount, rec.EarnedAt, rec.WindowEndsAt).Scan(&rec.ID)
	if err != nil {
		if pg.IsExclusionViolation(err, windowConstraint) {
			return nil, fmt.Errorf("video %s: %w", rec.VideoID, domain.ErrDuplicateWithinWindow)
		}
		zap.L().Error("can't save earning", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// LastEarnedAt returns the latest earning time for the pair after since, or nil.
func (r *Repository) LastEarnedAt(ctx context.Context, userID int, videoID string, since time.Time) (*time.Time, error) {
	query := `
		SELECT MAX(earned_at)
		FROM earnings
		WHERE user_id = $1 AND video_id = $2 AND earned_at > $3
	`
	var last *time.Time
	if err := r.db.QueryRow(ctx, query, userID, videoID, since).Scan(&last); err != nil {
		zap.L().Error("failed to get last earning", zap.Error(err))
		return nil, err
	}
	return last, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int, limit int) ([]domain.EarningRecord, error) {
	query := `
		SELECT id, user_id, video_id, view_id, amount, earned_at, window_ends_at
		FROM earnings
		WHERE user_id = $1
		ORDER BY earned_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

// ListSince returns the user's earnings at or after since, oldest first.
func (r *Repository) ListSince(ctx context.Context, userID int, since time.Time) ([]domain.EarningRecord, error) {
	query := `
		SELECT id, user_id, video_id, view_id, amount, earned_at, window_ends_at
		FROM earnings
		WHERE user_id = $1 AND earned_at >= $2
		ORDER BY earned_at
	`
	return r.list(ctx, query, userID, since)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.EarningRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.EarningRecord
	for rows.Next() {
		var rec domain.EarningRecord
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.VideoID, &rec.ViewID, &rec.Amount, &rec.EarnedAt, &rec.WindowEndsAt)
		if err != nil {
			zap.L().Error("failed to scan earning row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *Repository) Totals(ctx context.Context) (domain.Totals, error) {
	var t domain.Totals
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM earnings`).Scan(&t.Amount, &t.Count)
	if err != nil {
		zap.L().Error("failed to sum earnings", zap.Error(err))
		return domain.Totals{}, err
	}
	return t, nil
}
