package eligibility

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

func newGate() *Gate {
	return NewGate(Policy{
		MaxViewsPerDay:      5,
		MaxViewsPerIPPerDay: 100,
		DedupWindow:         24 * time.Hour,
		Location:            time.UTC,
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestGate_Evaluate(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	today := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cooldownID := uuid.New()

	tests := []struct {
		name      string
		snapshot  Snapshot
		expectErr error
	}{
		{
			name:     "Fresh user is allowed",
			snapshot: Snapshot{DailyDay: today},
		},
		{
			name:      "Daily cap reached",
			snapshot:  Snapshot{DailyCount: 5, DailyDay: today},
			expectErr: domain.ErrDailyLimitExceeded,
		},
		{
			name:     "Daily cap from yesterday resets",
			snapshot: Snapshot{DailyCount: 5, DailyDay: today.AddDate(0, 0, -1)},
		},
		{
			name:      "IP cap reached",
			snapshot:  Snapshot{DailyDay: today, IPViews: 100},
			expectErr: domain.ErrIPLimitExceeded,
		},
		{
			name:      "Earned from this video within the window",
			snapshot:  Snapshot{DailyDay: today, LastEarnedAt: ptr(now.Add(-23 * time.Hour))},
			expectErr: domain.ErrDuplicateWithinWindow,
		},
		{
			name:     "Earned from this video exactly one window ago",
			snapshot: Snapshot{DailyDay: today, LastEarnedAt: ptr(now.Add(-24 * time.Hour))},
		},
		{
			name: "Running cooldown",
			snapshot: Snapshot{DailyDay: today, ActiveCooldown: &domain.Cooldown{
				ID: cooldownID, Status: domain.CooldownActive, StartedAt: now.Add(-time.Minute), Duration: 10 * time.Minute,
			}},
			expectErr: domain.ErrCooldownActive,
		},
		{
			name: "Lapsed active cooldown does not block",
			snapshot: Snapshot{DailyDay: today, ActiveCooldown: &domain.Cooldown{
				ID: cooldownID, Status: domain.CooldownActive, StartedAt: now.Add(-10 * time.Minute), Duration: 10 * time.Minute,
			}},
		},
		{
			name: "Daily cap is checked before cooldown",
			snapshot: Snapshot{DailyCount: 5, DailyDay: today, IPViews: 100, ActiveCooldown: &domain.Cooldown{
				Status: domain.CooldownActive, StartedAt: now, Duration: 10 * time.Minute,
			}},
			expectErr: domain.ErrDailyLimitExceeded,
		},
		{
			name:      "IP cap is checked before dedup",
			snapshot:  Snapshot{DailyDay: today, IPViews: 100, LastEarnedAt: ptr(now)},
			expectErr: domain.ErrIPLimitExceeded,
		},
	}

	gate := newGate()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Evaluate(tt.snapshot, now)
			if tt.expectErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}
}

func TestGate_CooldownDenialCarriesRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	id := uuid.New()
	gate := newGate()

	err := gate.Evaluate(Snapshot{DailyDay: now, ActiveCooldown: &domain.Cooldown{
		ID: id, Status: domain.CooldownActive, StartedAt: now.Add(-4 * time.Minute), Duration: 10 * time.Minute,
	}}, now)

	var cooldownErr *domain.CooldownError
	require.True(t, errors.As(err, &cooldownErr))
	assert.Equal(t, id, cooldownErr.CooldownID)
	assert.Equal(t, 6*time.Minute, cooldownErr.Remaining)
}

func TestGate_DuplicateDenialCarriesRetryAt(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	earned := now.Add(-2 * time.Hour)
	gate := newGate()

	err := gate.Evaluate(Snapshot{DailyDay: now, LastEarnedAt: &earned}, now)

	var dupErr *domain.DuplicateError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, earned.Add(24*time.Hour), dupErr.RetryAt)
}

func TestDailyCount_UsesPolicyLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	gate := NewGate(Policy{MaxViewsPerDay: 5, MaxViewsPerIPPerDay: 100, Location: loc})

	// 22:30 UTC on May 1 is already May 2 at UTC+3.
	now := time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC)
	storedMay1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	storedMay2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, gate.DailyCount(4, storedMay1, now))
	assert.Equal(t, 4, gate.DailyCount(4, storedMay2, now))
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, loc), gate.Day(now))
}

func TestNewGate_Defaults(t *testing.T) {
	gate := NewGate(Policy{})
	assert.Equal(t, time.Local, gate.policy.Location)
	assert.Equal(t, 24*time.Hour, gate.policy.DedupWindow)
}
