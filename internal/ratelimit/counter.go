package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

//go:generate mockgen -source=counter.go -destination=mock_counter.go -package=ratelimit

type ViewRepo interface {
	CountByIPSince(ctx context.Context, ip string, since time.Time) (int, error)
}

// Usage holds the two daily counters consulted by the eligibility gate.
type Usage struct {
	UserDay    int
	UserDayOf  time.Time
	IPTrailing int
}

// Counter reads durable per-user-day and per-IP counters. The user-day counter lives on
// the wallet row and resets lazily; the IP counter is a sliding window over view events.
type Counter struct {
	views  ViewRepo
	window time.Duration
}

func NewCounter(views ViewRepo, window time.Duration) *Counter {
	return &Counter{views: views, window: window}
}

func (c *Counter) Usage(ctx context.Context, wallet *domain.Balance, ip string, now time.Time) (Usage, error) {
	ipViews, err := c.views.CountByIPSince(ctx, ip, now.Add(-c.window))
	if err != nil {
		return Usage{}, fmt.Errorf("count views by ip: %w", err)
	}
	return Usage{
		UserDay:    wallet.DailyViewCount,
		UserDayOf:  wallet.DailyViewDay,
		IPTrailing: ipViews,
	}, nil
}
