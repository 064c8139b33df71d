package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
)

func mockConnector(b Backend) (Connector, *bool) {
	released := false
	return func(ctx context.Context, opts *RootOptions) (Backend, func(), error) {
		return b, func() { released = true }, nil
	}, &released
}

func run(t *testing.T, connect Connector, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(connect)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(nil)
	require.NotNil(t, cmd)
	assert.Equal(t, "watchearnctl", cmd.Use)

	for _, path := range [][]string{
		{"migrate"},
		{"stats"},
		{"withdrawals", "list"},
		{"withdrawals", "resolve"},
		{"cooldowns", "reap"},
		{"users", "activate"},
		{"users", "deactivate"},
		{"users", "role"},
		{"users", "balance"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("database"))
}

func TestInvalidFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect, _ := mockConnector(NewMockBackend(ctrl))

	_, err := run(t, connect, "stats", "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestConnectFailure(t *testing.T) {
	connect := func(ctx context.Context, opts *RootOptions) (Backend, func(), error) {
		return nil, nil, errors.New("connection refused")
	}

	_, err := run(t, connect, "migrate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMigrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, released := mockConnector(b)

	b.EXPECT().Migrate(gomock.Any()).Return(nil)

	out, err := run(t, connect, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied")
	assert.True(t, *released)
}

func TestWithdrawalsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, _ := mockConnector(b)

	id := uuid.New()
	b.EXPECT().ListWithdrawals(gomock.Any(), domain.WithdrawalPending, 10).Return([]domain.Withdrawal{{
		ID:            id,
		UserID:        7,
		Amount:        1250,
		PaymentMethod: "paypal",
		Status:        domain.WithdrawalPending,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}, nil).Times(2)

	out, err := run(t, connect, "withdrawals", "list", "--status", "pending", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "12.50")

	out, err = run(t, connect, "withdrawals", "list", "--status", "pending", "--limit", "10", "--format", "json")
	require.NoError(t, err)
	var got []dto.WithdrawalDTO
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "12.50", got[0].Amount)
}

func TestWithdrawalsResolve(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		args     []string
		setup    func(b *MockBackend)
		wantOut  string
		wantCode int
	}{
		{
			name: "completed",
			args: []string{"withdrawals", "resolve", id.String(), "--outcome", "completed", "--notes", "paid"},
			setup: func(b *MockBackend) {
				b.EXPECT().ResolveWithdrawal(gomock.Any(), id, domain.WithdrawalCompleted, "paid").
					Return(&domain.Withdrawal{ID: id, Amount: 1000, Status: domain.WithdrawalCompleted}, nil)
			},
			wantOut:  "completed",
			wantCode: ExitSuccess,
		},
		{
			name: "already resolved",
			args: []string{"withdrawals", "resolve", id.String(), "--outcome", "rejected"},
			setup: func(b *MockBackend) {
				b.EXPECT().ResolveWithdrawal(gomock.Any(), id, domain.WithdrawalRejected, "").
					Return(nil, domain.ErrAlreadyTerminal)
			},
			wantCode: ExitFailure,
		},
		{
			name:     "bad id",
			args:     []string{"withdrawals", "resolve", "nope", "--outcome", "completed"},
			setup:    func(b *MockBackend) {},
			wantCode: ExitCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := NewMockBackend(ctrl)
			tt.setup(b)
			connect, _ := mockConnector(b)

			out, err := run(t, connect, tt.args...)
			assert.Equal(t, tt.wantCode, GetExitCode(err))
			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
		})
	}
}

func TestWithdrawalsResolveRequiresOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	connect, _ := mockConnector(NewMockBackend(ctrl))

	_, err := run(t, connect, "withdrawals", "resolve", uuid.NewString())
	assert.ErrorContains(t, err, "outcome")
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, _ := mockConnector(b)

	b.EXPECT().Stats(gomock.Any()).Return(&domain.Stats{
		Earnings:            domain.Totals{Amount: 2050, Count: 41},
		CompletedWithdrawal: domain.Totals{Amount: 1000, Count: 1},
	}, nil)

	out, err := run(t, connect, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "20.50")
	assert.Contains(t, out, "41")
}

func TestCooldownsReap(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, _ := mockConnector(b)

	b.EXPECT().ReapCooldowns(gomock.Any()).Return(3, nil)

	out, err := run(t, connect, "cooldowns", "reap")
	require.NoError(t, err)
	assert.Contains(t, out, "interrupted 3 stale cooldowns")
}

func TestUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, _ := mockConnector(b)

	b.EXPECT().SetActive(gomock.Any(), 5, false).Return(nil)
	b.EXPECT().SetActive(gomock.Any(), 5, true).Return(nil)
	b.EXPECT().SetRole(gomock.Any(), 5, domain.RoleAdmin).Return(nil)
	b.EXPECT().SetRole(gomock.Any(), 6, "root").Return(errors.New("invalid role"))

	out, err := run(t, connect, "users", "deactivate", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "user 5 deactivated")

	out, err = run(t, connect, "users", "activate", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "user 5 activated")

	out, err = run(t, connect, "users", "role", "5", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "user 5 is now admin")

	_, err = run(t, connect, "users", "role", "6", "root")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = run(t, connect, "users", "activate", "abc")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUsersBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := NewMockBackend(ctrl)
	connect, _ := mockConnector(b)

	b.EXPECT().AvailableBalance(gomock.Any(), 7).Return(int64(1250), nil)
	b.EXPECT().AvailableBalance(gomock.Any(), 7).Return(int64(5), nil)
	b.EXPECT().AvailableBalance(gomock.Any(), 8).Return(int64(0), domain.ErrNotFound)

	out, err := run(t, connect, "users", "balance", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "12.50")

	out, err = run(t, connect, "--format", "json", "users", "balance", "7")
	require.NoError(t, err)
	var got balanceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, balanceOutput{UserID: 7, Available: "0.05"}, got)

	_, err = run(t, connect, "users", "balance", "8")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
