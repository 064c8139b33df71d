package service

import (
	"time"

	"github.com/GlebRadaev/watchearn/internal/cache"
	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/config"
	"github.com/GlebRadaev/watchearn/internal/eligibility"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
	"github.com/GlebRadaev/watchearn/internal/repo"
	"github.com/GlebRadaev/watchearn/internal/service/authservice"
	"github.com/GlebRadaev/watchearn/internal/service/catalogservice"
	"github.com/GlebRadaev/watchearn/internal/service/cooldownservice"
	"github.com/GlebRadaev/watchearn/internal/service/ledgerservice"
	"github.com/GlebRadaev/watchearn/internal/service/viewservice"
	"github.com/GlebRadaev/watchearn/internal/service/withdrawalservice"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/clients"
)

// ipWindow is the trailing window of the per-IP view cap.
const ipWindow = 24 * time.Hour

type Services struct {
	AuthService       *authservice.Service
	LedgerService     *ledgerservice.Service
	CooldownService   *cooldownservice.Service
	WithdrawalService *withdrawalservice.Service
	CatalogService    *catalogservice.Service
	ViewService       *viewservice.Service
	JWT               auth.JWTServiceInterface
	Clock             clock.Clock
	MaxViewsPerDay    int
}

// Deps are the process level collaborators shared by every service.
type Deps struct {
	TXManager pg.TXManager
	Cache     catalogservice.Cache
	Client    clients.HTTPClientI
	Metrics   *metrics.Metrics
	Clock     clock.Clock
}

func New(cfg *config.Config, repo *repo.Repositories, d Deps) *Services {
	if d.Clock == nil {
		d.Clock = clock.Real{}
	}
	if d.Cache == nil {
		d.Cache = &cache.Redis{}
	}
	if d.Client == nil {
		d.Client = clients.NewHTTPClient()
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	ledgerService := ledgerservice.New(repo.Balances, repo.Earnings, d.TXManager, cfg.DedupWindow, cfg.Location())
	cooldownService := cooldownservice.New(repo.Cooldowns, d.TXManager, d.Metrics, cfg.CooldownDuration, cfg.CooldownTimeout)
	withdrawalService := withdrawalservice.New(repo.Balances, repo.Withdrawals, repo.Users, ledgerService,
		d.TXManager, d.Metrics, cfg.MinWithdrawal)
	catalogService := catalogservice.New(cfg.CatalogAddress, d.Client, d.Cache, d.Metrics, cfg.CatalogCacheTTL, cfg.DefaultReward)
	authService := authservice.New(repo.Users, ledgerService, d.TXManager, auth.NewHashService(cfg.PasswordCost), jwtService)

	gate := eligibility.NewGate(eligibility.Policy{
		MaxViewsPerDay:      cfg.MaxViewsPerDay,
		MaxViewsPerIPPerDay: cfg.MaxViewsPerIPPerDay,
		DedupWindow:         cfg.DedupWindow,
		Location:            cfg.Location(),
	})
	viewService := viewservice.New(viewservice.Deps{
		Catalog:   catalogService,
		Users:     repo.Users,
		Balances:  repo.Balances,
		Views:     repo.Views,
		Counter:   ratelimit.NewCounter(repo.Views, ipWindow),
		Ledger:    ledgerService,
		Cooldowns: cooldownService,
		Gate:      gate,
		TXManager: d.TXManager,
		Clock:     d.Clock,
		Metrics:   d.Metrics,
	})

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		CooldownService:   cooldownService,
		WithdrawalService: withdrawalService,
		CatalogService:    catalogService,
		ViewService:       viewService,
		JWT:               jwtService,
		Clock:             d.Clock,
		MaxViewsPerDay:    cfg.MaxViewsPerDay,
	}
}
