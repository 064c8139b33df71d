package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/watchearn/docs"
	adminhandlers "github.com/GlebRadaev/watchearn/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/watchearn/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/watchearn/internal/handlers/balance"
	cooldownhandlers "github.com/GlebRadaev/watchearn/internal/handlers/cooldowns"
	viewhandlers "github.com/GlebRadaev/watchearn/internal/handlers/views"
	withdrawalhandlers "github.com/GlebRadaev/watchearn/internal/handlers/withdrawals"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/metrics"
	"github.com/GlebRadaev/watchearn/internal/service"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/logger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
	GetDailyStats(w http.ResponseWriter, r *http.Request)
}

type ViewHandler interface {
	SubmitView(w http.ResponseWriter, r *http.Request)
}

type CooldownHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Interrupt(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	UpdatePaymentInfo(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

// Limiter guards a single route; *ratelimit.Burst satisfies it.
type Limiter interface {
	Middleware(next http.Handler) http.Handler
}

type Handlers struct {
	AuthHandler       AuthHandler
	BalanceHandler    BalanceHandler
	ViewHandler       ViewHandler
	CooldownHandler   CooldownHandler
	WithdrawalHandler WithdrawalHandler
	AdminHandler      AdminHandler

	JWT               auth.JWTServiceInterface
	Metrics           *metrics.Metrics
	AccessLog         zerolog.Logger
	ViewLimiter       Limiter
	WithdrawalLimiter Limiter
}

// Options carry the cross cutting pieces of the router. Nil limiters leave the routes unguarded.
type Options struct {
	Metrics           *metrics.Metrics
	AccessLog         zerolog.Logger
	ViewLimiter       Limiter
	WithdrawalLimiter Limiter
}

func New(s *service.Services, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		BalanceHandler:    balancehandlers.New(s.LedgerService, s.Clock, s.MaxViewsPerDay),
		ViewHandler:       viewhandlers.New(s.ViewService, s.Clock),
		CooldownHandler:   cooldownhandlers.New(s.CooldownService, s.Clock),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService, s.Clock),
		AdminHandler:      adminhandlers.New(s.WithdrawalService, s.Clock),

		JWT:               s.JWT,
		Metrics:           opts.Metrics,
		AccessLog:         opts.AccessLog,
		ViewLimiter:       opts.ViewLimiter,
		WithdrawalLimiter: opts.WithdrawalLimiter,
	}
}

func guard(l Limiter) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return l.Middleware
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		logger.AccessLog(h.AccessLog),
		h.Metrics.Middleware,
	)
	r.Handle("/metrics", h.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWT))
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/earnings", h.BalanceHandler.GetEarnings)
			r.Get("/earnings/stats", h.BalanceHandler.GetDailyStats)
			r.Get("/cooldown", h.CooldownHandler.Current)
			r.Put("/payment-info", h.WithdrawalHandler.UpdatePaymentInfo)
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				r.With(guard(h.WithdrawalLimiter)).Post("/", h.WithdrawalHandler.RequestWithdrawal)
			})
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.JWT))
		r.With(guard(h.ViewLimiter)).Post("/api/videos/{videoID}/views", h.ViewHandler.SubmitView)
		r.Route("/api/cooldowns/{id}", func(r chi.Router) {
			r.Post("/complete", h.CooldownHandler.Complete)
			r.Post("/interrupt", h.CooldownHandler.Interrupt)
		})

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(domain.RoleAdmin))
			r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
			r.Post("/withdrawals/{id}/resolve", h.AdminHandler.ResolveWithdrawal)
			r.Get("/stats", h.AdminHandler.Stats)
		})
	})

	return r
}
