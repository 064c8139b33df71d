package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/config"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/repo"
	"github.com/GlebRadaev/watchearn/internal/service/catalogservice"
	"github.com/GlebRadaev/watchearn/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{
		CatalogAddress:      "http://localhost:8081",
		JWTSecret:           "secret",
		TimeZone:            "UTC",
		MaxViewsPerDay:      20,
		MaxViewsPerIPPerDay: 100,
		DedupWindow:         24 * time.Hour,
		CooldownDuration:    10 * time.Minute,
		CooldownTimeout:     time.Hour,
		MinWithdrawal:       100,
		DefaultReward:       1,
		CatalogCacheTTL:     5 * time.Minute,
	}
	clk := clock.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	services := New(cfg, repo.New(mockDB), Deps{
		TXManager: pg.NewMockTXManager(ctrl),
		Cache:     catalogservice.NewMockCache(ctrl),
		Client:    clients.NewHTTPClient(),
		Clock:     clk,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.CooldownService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.ViewService)
	assert.NotNil(t, services.JWT)
	assert.Equal(t, clk, services.Clock)
	assert.Equal(t, 20, services.MaxViewsPerDay)
}

func TestNewDefaultsClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	services := New(&config.Config{JWTSecret: "secret"}, repo.New(mockDB), Deps{
		TXManager: pg.NewMockTXManager(ctrl),
	})

	assert.IsType(t, clock.Real{}, services.Clock)
}
