package cooldownrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

const (
	columns          = `id, user_id, view_id, status, started_at, duration_ms, completed_at, ended_at`
	oneActivePerUser = "cooldowns_one_active_per_user"
)

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

func scan(row scanner) (*domain.Cooldown, error) {
	var (
		c  domain.Cooldown
		ms int64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.ViewID, &c.Status, &c.StartedAt, &ms, &c.CompletedAt, &c.EndedAt)
	if err != nil {
		return nil, err
	}
	c.Duration = time.Duration(ms) * time.Millisecond
	return &c, nil
}

// Create inserts an active cooldown. A second active cooldown for the same user violates
// the partial unique index and is reported as ErrCooldownActive.
func (r *Repository) Create(ctx context.Context, c *domain.Cooldown) error {
	query := `
		INSERT INTO cooldowns (id, user_id, view_id, status, started_at, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.UserID, c.ViewID, c.Status, c.StartedAt, c.Duration.Milliseconds())
	if err != nil {
		if pg.IsUniqueViolation(err, oneActivePerUser) {
			return fmt.Errorf("user %d: %w", c.UserID, domain.ErrCooldownActive)
		}
		zap.L().Error("can't save cooldown", zap.Error(err))
		return err
	}
	return nil
}

// LockByID reads a cooldown FOR UPDATE. Returns nil when it does not exist.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Cooldown, error) {
	query := `SELECT ` + columns + ` FROM cooldowns WHERE id = $1 FOR UPDATE`
	c, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock cooldown", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindActiveByUser(ctx context.Context, userID int) (*domain.Cooldown, error) {
	query := `SELECT ` + columns + ` FROM cooldowns WHERE user_id = $1 AND status = 'active'`
	c, err := scan(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find active cooldown", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Finish moves an active cooldown into a terminal status. Rows that are already terminal
// are left untouched and reported as ErrAlreadyTerminal.
func (r *Repository) Finish(ctx context.Context, id uuid.UUID, status domain.CooldownStatus, now time.Time) error {
	query := `
		UPDATE cooldowns
		SET status = $1,
			ended_at = $2,
			completed_at = CASE WHEN $1 = 'completed' THEN $2 ELSE NULL END
		WHERE id = $3 AND status = 'active'
	`
	tag, err := r.db.Exec(ctx, query, status, now, id)
	if err != nil {
		zap.L().Error("failed to finish cooldown", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyTerminal
	}
	return nil
}

// InterruptLapsed closes the user's active cooldowns whose duration has fully elapsed.
func (r *Repository) InterruptLapsed(ctx context.Context, userID int, now time.Time) (int64, error) {
	query := `
		UPDATE cooldowns
		SET status = 'interrupted', ended_at = $2
		WHERE user_id = $1
			AND status = 'active'
			AND started_at + duration_ms * INTERVAL '1 millisecond' <= $2
	`
	tag, err := r.db.Exec(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("failed to interrupt lapsed cooldowns", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// FindStale lists active cooldowns that ended more than grace before now, oldest first.
func (r *Repository) FindStale(ctx context.Context, grace time.Duration, now time.Time, limit int) ([]domain.Cooldown, error) {
	query := `
		SELECT ` + columns + `
		FROM cooldowns
		WHERE status = 'active'
			AND started_at + (duration_ms + $1) * INTERVAL '1 millisecond' <= $2
		ORDER BY started_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, grace.Milliseconds(), now, limit)
	if err != nil {
		zap.L().Error("failed to fetch stale cooldowns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cooldowns []domain.Cooldown
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan cooldown row", zap.Error(err))
			return nil, err
		}
		cooldowns = append(cooldowns, *c)
	}
	return cooldowns, rows.Err()
}
