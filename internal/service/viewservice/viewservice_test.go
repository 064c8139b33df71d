package viewservice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/eligibility"
	"github.com/GlebRadaev/watchearn/internal/pg"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
)

var (
	now   = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	today = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
)

type mocks struct {
	catalog   *MockCatalog
	users     *MockUserRepo
	balances  *MockBalanceRepo
	views     *MockViewRepo
	counter   *MockCounter
	ledger    *MockLedger
	cooldowns *MockCooldowns
	tx        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		catalog:   NewMockCatalog(ctrl),
		users:     NewMockUserRepo(ctrl),
		balances:  NewMockBalanceRepo(ctrl),
		views:     NewMockViewRepo(ctrl),
		counter:   NewMockCounter(ctrl),
		ledger:    NewMockLedger(ctrl),
		cooldowns: NewMockCooldowns(ctrl),
		tx:        pg.NewMockTXManager(ctrl),
	}
	service := New(Deps{
		Catalog:   m.catalog,
		Users:     m.users,
		Balances:  m.balances,
		Views:     m.views,
		Counter:   m.counter,
		Ledger:    m.ledger,
		Cooldowns: m.cooldowns,
		Gate: eligibility.NewGate(eligibility.Policy{
			MaxViewsPerDay:      5,
			MaxViewsPerIPPerDay: 100,
			DedupWindow:         24 * time.Hour,
			Location:            time.UTC,
		}),
		TXManager: m.tx,
		Clock:     clock.NewManual(now),
	})
	return service, m
}

func inTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func view() View {
	return View{
		UserID:    1,
		VideoID:   "vid-1",
		IP:        "10.0.0.1",
		UserAgent: "test",
		StartedAt: now.Add(-time.Minute),
		EndedAt:   now,
		Completed: true,
	}
}

var (
	activeUser = &domain.User{ID: 1, IsActive: true}
	video      = &domain.VideoMetadata{VideoID: "vid-1", IsActive: true, Reward: 3}
	wallet     = &domain.Balance{UserID: 1, Balance: 10, TotalEarned: 10, DailyViewCount: 1, DailyViewDay: today}
)

// snapshot expects the reads made before the gate decides.
func snapshot(m *mocks, usage ratelimit.Usage, last *time.Time, active *domain.Cooldown) {
	m.balances.EXPECT().LockUserBalance(gomock.Any(), 1).Return(wallet, nil)
	m.counter.EXPECT().Usage(gomock.Any(), wallet, "10.0.0.1", now).Return(usage, nil)
	m.ledger.EXPECT().LastEarnedAt(gomock.Any(), 1, "vid-1", now).Return(last, nil)
	m.cooldowns.EXPECT().Current(gomock.Any(), 1).Return(active, nil)
}

func recordView(m *mocks, allowed bool, reason string) {
	m.views.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.ViewEvent) (*domain.ViewEvent, error) {
		if v.Allowed != allowed || v.DenyReason != reason {
			return nil, errors.New("unexpected decision recorded")
		}
		v.ID = 42
		return v, nil
	})
}

func TestSubmitViewAllowed(t *testing.T) {
	service, m := NewMock(t)

	m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
	m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
	inTx(m.tx)
	snapshot(m, ratelimit.Usage{UserDay: 1, UserDayOf: today, IPTrailing: 3}, nil, nil)
	recordView(m, true, "")

	earning := &domain.EarningRecord{ID: 7, UserID: 1, VideoID: "vid-1", ViewID: 42, Amount: 3, EarnedAt: now}
	credited := &domain.Balance{UserID: 1, Balance: 13, TotalEarned: 13, DailyViewCount: 2, DailyViewDay: today}
	cooldown := &domain.Cooldown{ID: uuid.New(), UserID: 1, ViewID: 42, Status: domain.CooldownActive, StartedAt: now, Duration: 10 * time.Minute}
	m.ledger.EXPECT().CreditForView(gomock.Any(), 1, "vid-1", int64(42), int64(3), now).Return(earning, credited, nil)
	m.cooldowns.EXPECT().Start(gomock.Any(), 1, int64(42), now).Return(cooldown, nil)

	result, err := service.SubmitView(context.Background(), view())
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.View.ID)
	assert.True(t, result.View.Allowed)
	assert.Equal(t, earning, result.Earning)
	assert.Equal(t, credited, result.Balance)
	assert.Equal(t, cooldown, result.Cooldown)
}

func TestSubmitViewDenied(t *testing.T) {
	last := now.Add(-time.Hour)
	running := &domain.Cooldown{ID: uuid.New(), UserID: 1, Status: domain.CooldownActive, StartedAt: now.Add(-4 * time.Minute), Duration: 10 * time.Minute}
	lapsed := &domain.Cooldown{ID: uuid.New(), UserID: 1, Status: domain.CooldownActive, StartedAt: now.Add(-11 * time.Minute), Duration: 10 * time.Minute}

	tests := []struct {
		name      string
		usage     ratelimit.Usage
		last      *time.Time
		active    *domain.Cooldown
		expectErr error
		reason    string
	}{
		{
			name:      "Daily cap reached",
			usage:     ratelimit.Usage{UserDay: 5, UserDayOf: today},
			expectErr: domain.ErrDailyLimitExceeded,
			reason:    "DAILY_LIMIT_EXCEEDED",
		},
		{
			name:      "IP cap reached",
			usage:     ratelimit.Usage{UserDay: 1, UserDayOf: today, IPTrailing: 100},
			expectErr: domain.ErrIPLimitExceeded,
			reason:    "IP_LIMIT_EXCEEDED",
		},
		{
			name:      "Earned from this video an hour ago",
			usage:     ratelimit.Usage{UserDay: 1, UserDayOf: today},
			last:      &last,
			expectErr: domain.ErrDuplicateWithinWindow,
			reason:    "DUPLICATE_WITHIN_WINDOW",
		},
		{
			name:      "Cooldown still running",
			usage:     ratelimit.Usage{UserDay: 1, UserDayOf: today},
			active:    running,
			expectErr: domain.ErrCooldownActive,
			reason:    "COOLDOWN_ACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
			m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
			inTx(m.tx)
			snapshot(m, tt.usage, tt.last, tt.active)
			recordView(m, false, tt.reason)

			result, err := service.SubmitView(context.Background(), view())
			assert.ErrorIs(t, err, tt.expectErr)
			require.NotNil(t, result)
			assert.Equal(t, int64(42), result.View.ID)
			assert.Nil(t, result.Earning)
			assert.Nil(t, result.Cooldown)
		})
	}

	t.Run("Cooldown denial carries remaining time", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		snapshot(m, ratelimit.Usage{UserDayOf: today}, nil, running)
		recordView(m, false, "COOLDOWN_ACTIVE")

		_, err := service.SubmitView(context.Background(), view())
		var cooldownErr *domain.CooldownError
		require.ErrorAs(t, err, &cooldownErr)
		assert.Equal(t, running.ID, cooldownErr.CooldownID)
		assert.Equal(t, 6*time.Minute, cooldownErr.Remaining)
	})

	t.Run("Lapsed cooldown does not block", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		snapshot(m, ratelimit.Usage{UserDayOf: today}, nil, lapsed)
		recordView(m, true, "")
		m.ledger.EXPECT().CreditForView(gomock.Any(), 1, "vid-1", int64(42), int64(3), now).
			Return(&domain.EarningRecord{Amount: 3}, wallet, nil)
		m.cooldowns.EXPECT().Start(gomock.Any(), 1, int64(42), now).Return(&domain.Cooldown{}, nil)

		_, err := service.SubmitView(context.Background(), view())
		assert.NoError(t, err)
	})
}

func TestSubmitViewPreconditions(t *testing.T) {
	incomplete := view()
	incomplete.Completed = false
	backwards := view()
	backwards.EndedAt = backwards.StartedAt.Add(-time.Second)

	tests := []struct {
		name        string
		in          View
		prepareMock func(m *mocks)
		expectErr   error
	}{
		{
			name: "Unknown user",
			in:   view(),
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectErr: domain.ErrNotFound,
		},
		{
			name: "Deactivated user",
			in:   view(),
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
			},
			expectErr: domain.ErrUserInactive,
		},
		{
			name: "Playback not completed",
			in:   incomplete,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
			},
			expectErr: domain.ErrViewIncomplete,
		},
		{
			name: "Ended before it started",
			in:   backwards,
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
			},
			expectErr: domain.ErrViewIncomplete,
		},
		{
			name: "Video not in catalog",
			in:   view(),
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
				m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(nil, domain.ErrVideoNotFound)
			},
			expectErr: domain.ErrVideoNotFound,
		},
		{
			name: "Video not earning",
			in:   view(),
			prepareMock: func(m *mocks) {
				m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
				m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(&domain.VideoMetadata{VideoID: "vid-1"}, nil)
			},
			expectErr: domain.ErrVideoUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.SubmitView(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, result)
		})
	}
}

func TestSubmitViewFailures(t *testing.T) {
	t.Run("Credit race is surfaced without a result", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		snapshot(m, ratelimit.Usage{UserDayOf: today}, nil, nil)
		recordView(m, true, "")
		m.ledger.EXPECT().CreditForView(gomock.Any(), 1, "vid-1", int64(42), int64(3), now).
			Return(nil, nil, domain.ErrDuplicateWithinWindow)

		result, err := service.SubmitView(context.Background(), view())
		assert.ErrorIs(t, err, domain.ErrDuplicateWithinWindow)
		assert.Nil(t, result)
	})

	t.Run("Storage failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		m.balances.EXPECT().LockUserBalance(gomock.Any(), 1).Return(nil, errors.New("connection reset"))

		result, err := service.SubmitView(context.Background(), view())
		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, result)
	})

	t.Run("Missing wallet is an internal error", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		m.balances.EXPECT().LockUserBalance(gomock.Any(), 1).
			Return(nil, fmt.Errorf("wallet of user 1: %w", domain.ErrNotFound))

		result, err := service.SubmitView(context.Background(), view())
		require.Error(t, err)
		assert.ErrorIs(t, err, errMissingWallet)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.False(t, domain.IsPolicyDenial(err))
		assert.Nil(t, result)
	})

	t.Run("Cooldown start failure rolls back", func(t *testing.T) {
		service, m := NewMock(t)
		m.users.EXPECT().FindByID(gomock.Any(), 1).Return(activeUser, nil)
		m.catalog.EXPECT().VideoMetadata(gomock.Any(), "vid-1").Return(video, nil)
		inTx(m.tx)
		snapshot(m, ratelimit.Usage{UserDayOf: today}, nil, nil)
		recordView(m, true, "")
		m.ledger.EXPECT().CreditForView(gomock.Any(), 1, "vid-1", int64(42), int64(3), now).
			Return(&domain.EarningRecord{Amount: 3}, wallet, nil)
		m.cooldowns.EXPECT().Start(gomock.Any(), 1, int64(42), now).Return(nil, &domain.CooldownError{})

		_, err := service.SubmitView(context.Background(), view())
		assert.ErrorIs(t, err, domain.ErrCooldownActive)
	})
}

func TestLostRace(t *testing.T) {
	tests := []struct {
		name string
		err  error
		race bool
	}{
		{name: "Earning constraint", err: &domain.DuplicateError{RetryAt: now}, race: true},
		{name: "Active cooldown index", err: &domain.CooldownError{}, race: true},
		{name: "Bad reward", err: domain.ErrInvalidAmount},
		{name: "Missing wallet", err: fmt.Errorf("user 1: %w", errMissingWallet)},
		{name: "Storage", err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.race, lostRace(tt.err))
		})
	}
}
