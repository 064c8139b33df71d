// Package reaper interrupts active cooldowns the client never confirmed.
package reaper

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
)

const batchLimit = 1000

type Cooldowns interface {
	FindStale(ctx context.Context, now time.Time, limit int) ([]domain.Cooldown, error)
	ExpireStale(ctx context.Context, id uuid.UUID, now time.Time) error
}

type Reaper struct {
	cooldowns Cooldowns
	clock     clock.Clock
	pool      WorkerPoolI
	interval  time.Duration
	limit     int

	// ids queued or running, shared across ticks
	inFlight sync.Map
}

func New(cooldowns Cooldowns, clk clock.Clock, pool WorkerPoolI, interval time.Duration) *Reaper {
	return &Reaper{
		cooldowns: cooldowns,
		clock:     clk,
		pool:      pool,
		interval:  interval,
		limit:     batchLimit,
	}
}

// Start runs the reaper in the background.
func (r *Reaper) Start(ctx context.Context) {
	go r.Run(ctx)
}

// Run sweeps every interval and returns once ctx is done and the current sweep finished.
func (r *Reaper) Run(ctx context.Context) {
	zap.L().Info("cooldown reaper started", zap.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping cooldown reaper")
			return
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil {
				zap.L().Error("cooldown sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep interrupts one batch of stale cooldowns and reports how many it closed.
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	now := r.clock.Now()
	stale, err := r.cooldowns.FindStale(ctx, now, r.limit)
	if err != nil {
		return 0, fmt.Errorf("find stale cooldowns: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	var (
		g       errgroup.Group
		tasks   sync.WaitGroup
		expired atomic.Int64
	)
	for _, c := range stale {
		id := c.ID
		if _, loaded := r.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		tasks.Add(1)
		g.Go(func() error {
			err := r.pool.AddTask(ctx, func() error {
				defer tasks.Done()
				defer r.inFlight.Delete(id)
				if err := r.cooldowns.ExpireStale(ctx, id, now); err != nil {
					return fmt.Errorf("expire cooldown %s: %w", id, err)
				}
				expired.Add(1)
				return nil
			})
			if err != nil {
				r.inFlight.Delete(id)
				tasks.Done()
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	tasks.Wait()

	n := int(expired.Load())
	if n > 0 {
		zap.L().Info("stale cooldowns interrupted", zap.Int("count", n), zap.Int("found", len(stale)))
	}
	return n, err
}
