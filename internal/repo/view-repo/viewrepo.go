package viewrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, ev *domain.ViewEvent) (*domain.ViewEvent, error) {
	query := `
		INSERT INTO view_events (user_id, video_id, ip, user_agent, started_at, ended_at, completed, allowed, deny_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, ev.UserID, ev.VideoID, ev.IP, ev.UserAgent, ev.StartedAt, ev.EndedAt,
		ev.Completed, ev.Allowed, ev.DenyReason, ev.CreatedAt).Scan(&ev.ID)
	if err != nil {
		zap.L().Error("can't save view event", zap.Error(err))
		return nil, err
	}
	return ev, nil
}

// CountByIPSince counts the earning views from ip after since. Denied attempts are kept
// for audit but do not use up the address quota.
func (r *Repository) CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM view_events WHERE ip = $1 AND created_at > $2 AND allowed`, ip, since).Scan(&n)
	if err != nil {
		zap.L().Error("failed to count views by ip", zap.Error(err))
		return 0, err
	}
	return n, nil
}
