package cooldownrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

var (
	cols    = []string{"id", "user_id", "view_id", "status", "started_at", "duration_ms", "completed_at", "ended_at"}
	started = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	id      = uuid.MustParse("6f1c8d4e-2a7b-4c1d-9e3f-5a6b7c8d9e0f")
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func activeRow() *pgxmock.Rows {
	return pgxmock.NewRows(cols).
		AddRow(id, 7, int64(3), domain.CooldownActive, started, int64(600000), (*time.Time)(nil), (*time.Time)(nil))
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO cooldowns (id, user_id, view_id, status, started_at, duration_ms)`)
	c := &domain.Cooldown{ID: id, UserID: 7, ViewID: 3, Status: domain.CooldownActive, StartedAt: started, Duration: 10 * time.Minute}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Inserts active cooldown",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, 7, int64(3), domain.CooldownActive, started, int64(600000)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Second active cooldown",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, 7, int64(3), domain.CooldownActive, started, int64(600000)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cooldowns_one_active_per_user"})
			},
			expectErr: domain.ErrCooldownActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), c)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM cooldowns WHERE id = $1 FOR UPDATE`)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).WillReturnRows(activeRow())

		c, err := repo.LockByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, &domain.Cooldown{
			ID: id, UserID: 7, ViewID: 3, Status: domain.CooldownActive, StartedAt: started, Duration: 10 * time.Minute,
		}, c)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)

		c, err := repo.LockByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, c)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindActiveByUser(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cooldowns WHERE user_id = $1 AND status = 'active'`)).
		WithArgs(7).
		WillReturnRows(activeRow())

	c, err := repo.FindActiveByUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.True(t, c.Running(started.Add(time.Minute)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Finish(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE cooldowns SET status = $1, ended_at = $2, completed_at = CASE WHEN $1 = 'completed' THEN $2 ELSE NULL END WHERE id = $3 AND status = 'active'`)
	now := started.Add(11 * time.Minute)

	tests := []struct {
		name      string
		status    domain.CooldownStatus
		mockSetup func()
		expectErr error
	}{
		{
			name:   "Completes active cooldown",
			status: domain.CooldownCompleted,
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(domain.CooldownCompleted, now, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:   "Terminal cooldown is untouched",
			status: domain.CooldownInterrupted,
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(domain.CooldownInterrupted, now, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrAlreadyTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Finish(context.Background(), id, tt.status, now)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InterruptLapsed(t *testing.T) {
	repo, mock := NewMock(t)
	now := started.Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'interrupted', ended_at = $2 WHERE user_id = $1 AND status = 'active'`)).
		WithArgs(7, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.InterruptLapsed(context.Background(), 7, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindStale(t *testing.T) {
	repo, mock := NewMock(t)
	now := started.Add(2 * time.Hour)
	query := regexp.QuoteMeta(`AND started_at + (duration_ms + $1) * INTERVAL '1 millisecond' <= $2 ORDER BY started_at LIMIT $3`)

	t.Run("Lists stale cooldowns", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(3600000), now, 1000).WillReturnRows(activeRow())

		stale, err := repo.FindStale(context.Background(), time.Hour, now, 1000)
		assert.NoError(t, err)
		assert.Len(t, stale, 1)
		assert.Equal(t, 10*time.Minute, stale[0].Duration)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(3600000), now, 1000).WillReturnError(errors.New("database error"))

		stale, err := repo.FindStale(context.Background(), time.Hour, now, 1000)
		assert.Error(t, err)
		assert.Nil(t, stale)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
