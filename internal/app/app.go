package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/cache"
	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/config"
	"github.com/GlebRadaev/watchearn/internal/handlers"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
	"github.com/GlebRadaev/watchearn/internal/reaper"
	"github.com/GlebRadaev/watchearn/internal/repo"
	"github.com/GlebRadaev/watchearn/internal/service"
	"github.com/GlebRadaev/watchearn/pkg/clients"
	"github.com/GlebRadaev/watchearn/pkg/logger"
)

const (
	reaperWorkers   = 10
	shutdownTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	reaper *reaper.Reaper

	pool       *pgxpool.Pool
	cache      *cache.Redis
	workerPool *reaper.WorkerPool
	limiters   []*ratelimit.Burst

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	a.cfg = cfg

	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	txManager, err := a.openStorage(ctx)
	if err != nil {
		return err
	}
	a.wire(ctx, txManager)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startReaper(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// openStorage connects to Postgres and brings the schema up to date.
func (a *Application) openStorage(ctx context.Context) (pg.TXManager, error) {
	pool, err := pg.NewPool(ctx, a.cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool))
	return pg.NewTXManager(pool), nil
}

// wire builds services, the router and the background reaper on top of storage.
func (a *Application) wire(ctx context.Context, txManager pg.TXManager) {
	m := metrics.New()
	a.cache = cache.NewRedis(ctx, a.cfg.RedisURL)
	a.srv = service.New(a.cfg, a.repo, service.Deps{
		TXManager: txManager,
		Cache:     a.cache,
		Client:    clients.NewHTTPClient(),
		Metrics:   m,
		Clock:     clock.Real{},
	})

	viewLimiter := ratelimit.PerMinute(a.cfg.ViewsPerMinute)
	withdrawalLimiter := ratelimit.PerDay(a.cfg.WithdrawalsPerDay)
	a.limiters = []*ratelimit.Burst{viewLimiter, withdrawalLimiter}
	a.api = handlers.New(a.srv, handlers.Options{
		Metrics:           m,
		AccessLog:         logger.NewAccessLogger(os.Stdout, a.cfg.LogLvl),
		ViewLimiter:       viewLimiter,
		WithdrawalLimiter: withdrawalLimiter,
	})

	a.workerPool = reaper.NewWorkerPool(reaperWorkers)
	a.reaper = reaper.New(a.srv.CooldownService, clock.Real{}, a.workerPool, a.cfg.ReaperInterval)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReaper(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.reaper.Run(ctx)
		a.workerPool.Close()
	}()
}

// release frees what Start acquired. It runs after every goroutine has stopped.
func (a *Application) release() {
	for _, l := range a.limiters {
		l.Stop()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.release()

	return appErr
}
