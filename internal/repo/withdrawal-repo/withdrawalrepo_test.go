package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/watchearn/internal/domain"
)

var (
	cols    = []string{"id", "user_id", "amount", "payment_method", "payment_details", "status", "notes", "created_at", "processed_at"}
	id      = uuid.MustParse("0b5e3a2c-4d6f-4a1b-8c9d-1e2f3a4b5c6d")
	created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	details = map[string]string{"email": "user@example.com"}
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func pending() *domain.Withdrawal {
	return &domain.Withdrawal{
		ID: id, UserID: 1, Amount: 500, PaymentMethod: domain.PaymentPayPal, PaymentDetails: details,
		Status: domain.WithdrawalPending, CreatedAt: created,
	}
}

func pendingRows() *pgxmock.Rows {
	return pgxmock.NewRows(cols).
		AddRow(id, 1, int64(500), domain.PaymentPayPal, details, domain.WithdrawalPending, "", created, (*time.Time)(nil))
}

func TestRepository_CreateWithdrawal(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO withdrawals (id, user_id, amount, payment_method, payment_details, status, notes, created_at)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create withdrawal successfully",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, 1, int64(500), domain.PaymentPayPal, details, domain.WithdrawalPending, "", created).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, 1, int64(500), domain.PaymentPayPal, details, domain.WithdrawalPending, "", created).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreateWithdrawal(ctx, pending())

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, pending(), result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM withdrawals WHERE id = $1 FOR UPDATE`)

	mock.ExpectQuery(query).WithArgs(id).WillReturnRows(pendingRows())
	wd, err := repo.LockByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, pending(), wd)

	mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
	wd, err = repo.LockByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, wd)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Resolve(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE withdrawals SET status = $1, notes = $2, processed_at = $3 WHERE id = $4 AND status = 'pending'`)
	processed := created.Add(time.Hour)

	tests := []struct {
		name      string
		affected  int64
		expectErr error
	}{
		{name: "Pending withdrawal resolved", affected: 1},
		{name: "Already resolved", affected: 0, expectErr: domain.ErrAlreadyTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wd := pending()
			wd.Status = domain.WithdrawalRejected
			wd.Notes = "account closed"
			wd.ProcessedAt = &processed

			mock.ExpectExec(query).
				WithArgs(domain.WithdrawalRejected, "account closed", &processed, id).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			err := repo.Resolve(context.Background(), wd)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetWithdrawalsByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(pendingRows())

	result, err := repo.GetWithdrawalsByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, []domain.Withdrawal{*pending()}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC LIMIT $2`)

	t.Run("Filtered by status", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("pending", 100).WillReturnRows(pendingRows())

		result, err := repo.List(context.Background(), domain.WithdrawalPending, 100)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("", 100).WillReturnError(errors.New("database error"))

		result, err := repo.List(context.Background(), "", 100)
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM withdrawals WHERE status = $1`)).
		WithArgs("completed").
		WillReturnRows(pgxmock.NewRows([]string{"sum", "count"}).AddRow(int64(900), 3))

	totals, err := repo.Totals(context.Background(), domain.WithdrawalCompleted)
	assert.NoError(t, err)
	assert.Equal(t, domain.Totals{Amount: 900, Count: 3}, totals)
	assert.NoError(t, mock.ExpectationsWereMet())
}
