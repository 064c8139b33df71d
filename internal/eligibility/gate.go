// Package eligibility decides whether a completed view may earn.
//
// The gate is a pure function of a Snapshot: callers gather the snapshot inside the
// same transaction that will apply the credit, so the decision and the write see the
// same state.
package eligibility

import (
	"time"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

type Policy struct {
	MaxViewsPerDay      int
	MaxViewsPerIPPerDay int
	DedupWindow         time.Duration
	Location            *time.Location
}

// Snapshot is the user's recent activity as of the evaluation.
type Snapshot struct {
	// DailyCount and DailyDay are the stored counter and the calendar day it belongs to.
	DailyCount int
	DailyDay   time.Time
	// IPViews counts view events from the client IP within the trailing window.
	IPViews int
	// LastEarnedAt is the latest earning for this (user, video) inside the window, if any.
	LastEarnedAt *time.Time
	// ActiveCooldown is the user's cooldown in status active, if any.
	ActiveCooldown *domain.Cooldown
}

type Gate struct {
	policy Policy
}

func NewGate(policy Policy) *Gate {
	if policy.Location == nil {
		policy.Location = time.Local
	}
	if policy.DedupWindow <= 0 {
		policy.DedupWindow = 24 * time.Hour
	}
	return &Gate{policy: policy}
}

// Evaluate returns nil when the view may earn, or the first failing policy denial.
func (g *Gate) Evaluate(s Snapshot, now time.Time) error {
	if g.DailyCount(s.DailyCount, s.DailyDay, now) >= g.policy.MaxViewsPerDay {
		return domain.ErrDailyLimitExceeded
	}

	if s.IPViews >= g.policy.MaxViewsPerIPPerDay {
		return domain.ErrIPLimitExceeded
	}

	if s.LastEarnedAt != nil && now.Sub(*s.LastEarnedAt) < g.policy.DedupWindow {
		return &domain.DuplicateError{RetryAt: s.LastEarnedAt.Add(g.policy.DedupWindow)}
	}

	if c := s.ActiveCooldown; c != nil && c.Running(now) {
		return &domain.CooldownError{CooldownID: c.ID, Remaining: c.Remaining(now)}
	}

	return nil
}

// DailyCount is the stored counter when it belongs to today, otherwise zero.
func (g *Gate) DailyCount(count int, day, now time.Time) int {
	if !SameDay(day, now, g.policy.Location) {
		return 0
	}
	return count
}

// Day is the calendar day of now in the policy location, as midnight of that day.
func (g *Gate) Day(now time.Time) time.Time {
	return StartOfDay(now, g.policy.Location)
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay compares calendar dates. day may come from a DATE column, so only its
// year/month/day are significant.
func SameDay(day, now time.Time, loc *time.Location) bool {
	y1, m1, d1 := day.Date()
	y2, m2, d2 := now.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
