package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintErrors(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "cooldowns_one_active_per_user"}
	exclusion := &pgconn.PgError{Code: "23P01", ConstraintName: "earnings_one_per_window"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "balances_within_earned"}
	deadlock := &pgconn.PgError{Code: "40P01"}

	assert.True(t, IsUniqueViolation(unique, ""))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique), "cooldowns_one_active_per_user"))
	assert.False(t, IsUniqueViolation(unique, "other"))
	assert.False(t, IsUniqueViolation(exclusion, ""))

	assert.True(t, IsExclusionViolation(exclusion, "earnings_one_per_window"))
	assert.False(t, IsExclusionViolation(unique, ""))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(errors.New("plain")))

	assert.True(t, IsRetryable(deadlock))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.False(t, IsRetryable(unique))
	assert.False(t, IsRetryable(nil))
}
