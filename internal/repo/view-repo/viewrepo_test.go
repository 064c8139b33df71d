package viewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO view_events (user_id, video_id, ip, user_agent, started_at, ended_at, completed, allowed, deny_reason, created_at)`)

	tests := []struct {
		name      string
		event     domain.ViewEvent
		mockSetup func(ev domain.ViewEvent)
		expectErr bool
	}{
		{
			name: "Allowed view",
			event: domain.ViewEvent{
				UserID: 7, VideoID: "vid-1", IP: "203.0.113.7", UserAgent: "curl",
				StartedAt: now.Add(-time.Minute), EndedAt: now, Completed: true, Allowed: true, CreatedAt: now,
			},
			mockSetup: func(ev domain.ViewEvent) {
				mock.ExpectQuery(query).
					WithArgs(ev.UserID, ev.VideoID, ev.IP, ev.UserAgent, ev.StartedAt, ev.EndedAt, true, true, "", now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(9)))
			},
		},
		{
			name: "Denied view keeps the reason",
			event: domain.ViewEvent{
				UserID: 7, VideoID: "vid-1", IP: "203.0.113.7",
				StartedAt: now.Add(-time.Minute), EndedAt: now, Completed: true, DenyReason: "COOLDOWN_ACTIVE", CreatedAt: now,
			},
			mockSetup: func(ev domain.ViewEvent) {
				mock.ExpectQuery(query).
					WithArgs(ev.UserID, ev.VideoID, ev.IP, "", ev.StartedAt, ev.EndedAt, true, false, "COOLDOWN_ACTIVE", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.event)
			ev := tt.event
			result, err := repo.Create(context.Background(), &ev)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(9), result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CountByIPSince(t *testing.T) {
	repo, mock := NewMock(t)
	since := time.Date(2024, 4, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM view_events WHERE ip = $1 AND created_at > $2 AND allowed`)).
		WithArgs("203.0.113.7", since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(17))

	n, err := repo.CountByIPSince(context.Background(), "203.0.113.7", since)
	assert.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
