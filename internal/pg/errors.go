package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation      = "23505"
	codeExclusionViolation   = "23P01"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// IsUniqueViolation reports a unique index violation, optionally on a specific constraint.
func IsUniqueViolation(err error, constraint string) bool {
	if pgCode(err) != codeUniqueViolation {
		return false
	}
	return constraint == "" || constraintName(err) == constraint
}

func IsExclusionViolation(err error, constraint string) bool {
	if pgCode(err) != codeExclusionViolation {
		return false
	}
	return constraint == "" || constraintName(err) == constraint
}

func IsCheckViolation(err error) bool {
	return pgCode(err) == codeCheckViolation
}

// IsRetryable reports conflicts that a fresh attempt of the same transaction can resolve.
func IsRetryable(err error) bool {
	switch pgCode(err) {
	case codeSerializationFailure, codeDeadlockDetected:
		return true
	}
	return false
}
