package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/config"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/reaper"
	"github.com/GlebRadaev/watchearn/internal/repo"
	"github.com/GlebRadaev/watchearn/internal/service"
	"github.com/GlebRadaev/watchearn/pkg/logger"
)

//go:generate mockgen -source=backend.go -destination=mock_backend.go -package=cli

const reapWorkers = 4

type Backend interface {
	Migrate(ctx context.Context) error
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, id uuid.UUID, outcome domain.WithdrawalStatus, notes string) (*domain.Withdrawal, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	ReapCooldowns(ctx context.Context) (int, error)
	SetActive(ctx context.Context, userID int, active bool) error
	SetRole(ctx context.Context, userID int, role string) error
	AvailableBalance(ctx context.Context, userID int) (int64, error)
}

type postgresBackend struct {
	pool    *pgxpool.Pool
	srv     *service.Services
	reaper  *reaper.Reaper
	workers *reaper.WorkerPool
	clock   clock.Clock
}

// Connect is the Connector used by the binary. It talks to Postgres directly through
// the same services the HTTP server uses.
func Connect(ctx context.Context, opts *RootOptions) (Backend, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	cfg.Database = opts.Database
	cfg.LogLvl = "error"
	if opts.Verbose {
		cfg.LogLvl = "debug"
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, nil, err
	}

	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	srv := service.New(cfg, repo.New(pg.New(pool)), service.Deps{
		TXManager: pg.NewTXManager(pool),
		Clock:     clock.Real{},
	})
	workers := reaper.NewWorkerPool(reapWorkers)

	b := &postgresBackend{
		pool:    pool,
		srv:     srv,
		reaper:  reaper.New(srv.CooldownService, clock.Real{}, workers, time.Minute),
		workers: workers,
		clock:   clock.Real{},
	}
	release := func() {
		workers.Close()
		pool.Close()
	}
	return b, release, nil
}

func (b *postgresBackend) Migrate(ctx context.Context) error {
	return pg.RunMigrations(ctx, b.pool)
}

func (b *postgresBackend) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error) {
	return b.srv.WithdrawalService.ListWithdrawals(ctx, status, limit)
}

func (b *postgresBackend) ResolveWithdrawal(ctx context.Context, id uuid.UUID, outcome domain.WithdrawalStatus, notes string) (*domain.Withdrawal, error) {
	return b.srv.WithdrawalService.Resolve(ctx, id, outcome, notes, b.clock.Now())
}

func (b *postgresBackend) Stats(ctx context.Context) (*domain.Stats, error) {
	return b.srv.WithdrawalService.Stats(ctx)
}

// ReapCooldowns sweeps until a pass closes nothing.
func (b *postgresBackend) ReapCooldowns(ctx context.Context) (int, error) {
	total := 0
	for {
		n, err := b.reaper.Sweep(ctx)
		total += n
		if err != nil || n == 0 {
			return total, err
		}
	}
}

func (b *postgresBackend) SetActive(ctx context.Context, userID int, active bool) error {
	return b.srv.AuthService.SetActive(ctx, userID, active)
}

func (b *postgresBackend) SetRole(ctx context.Context, userID int, role string) error {
	return b.srv.AuthService.SetRole(ctx, userID, role)
}

func (b *postgresBackend) AvailableBalance(ctx context.Context, userID int) (int64, error) {
	return b.srv.LedgerService.GetAvailableBalance(ctx, userID)
}
