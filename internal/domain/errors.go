package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Policy denials. Expected, user facing and not retryable with the same input.
var (
	ErrDailyLimitExceeded    = errors.New("daily view limit exceeded")
	ErrIPLimitExceeded       = errors.New("ip view limit exceeded")
	ErrDuplicateWithinWindow = errors.New("already earned from this video within the last 24 hours")
	ErrCooldownActive        = errors.New("cooldown is active")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMissingPaymentInfo    = errors.New("payment method and details are required")
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrNotOwner              = errors.New("not the owner")
	ErrAlreadyTerminal       = errors.New("already completed or interrupted")
	ErrTooEarly              = errors.New("cooldown period not completed yet")
	ErrNotFound              = errors.New("not found")
	ErrVideoNotFound         = errors.New("video not found")
	ErrVideoUnavailable      = errors.New("video is not eligible for earnings")
	ErrViewIncomplete        = errors.New("view is not completed")
	ErrUserInactive          = errors.New("user account is deactivated")
	ErrInvalidStatus         = errors.New("invalid withdrawal outcome")
)

// ErrTransient is returned when a transaction kept losing races after bounded retries.
var ErrTransient = errors.New("transient failure, try again")

var policyDenials = []error{
	ErrDailyLimitExceeded,
	ErrIPLimitExceeded,
	ErrDuplicateWithinWindow,
	ErrCooldownActive,
	ErrInsufficientBalance,
	ErrInvalidAmount,
	ErrMissingPaymentInfo,
	ErrInvalidPaymentDetails,
	ErrNotOwner,
	ErrAlreadyTerminal,
	ErrTooEarly,
	ErrNotFound,
	ErrVideoNotFound,
	ErrVideoUnavailable,
	ErrViewIncomplete,
	ErrUserInactive,
	ErrInvalidStatus,
}

func IsPolicyDenial(err error) bool {
	for _, target := range policyDenials {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// DenyReason returns the machine readable code of a policy denial, or "" for other errors.
func DenyReason(err error) string {
	switch {
	case errors.Is(err, ErrDailyLimitExceeded):
		return "DAILY_LIMIT_EXCEEDED"
	case errors.Is(err, ErrIPLimitExceeded):
		return "IP_LIMIT_EXCEEDED"
	case errors.Is(err, ErrDuplicateWithinWindow):
		return "DUPLICATE_WITHIN_WINDOW"
	case errors.Is(err, ErrCooldownActive):
		return "COOLDOWN_ACTIVE"
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrMissingPaymentInfo):
		return "MISSING_PAYMENT_INFO"
	case errors.Is(err, ErrInvalidPaymentDetails):
		return "INVALID_PAYMENT_DETAILS"
	case errors.Is(err, ErrNotOwner):
		return "NOT_OWNER"
	case errors.Is(err, ErrAlreadyTerminal):
		return "ALREADY_TERMINAL"
	case errors.Is(err, ErrTooEarly):
		return "TOO_EARLY"
	case errors.Is(err, ErrVideoNotFound):
		return "VIDEO_NOT_FOUND"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrVideoUnavailable):
		return "VIDEO_UNAVAILABLE"
	case errors.Is(err, ErrViewIncomplete):
		return "VIEW_INCOMPLETE"
	case errors.Is(err, ErrUserInactive):
		return "USER_INACTIVE"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	}
	return ""
}

// CooldownError is a CooldownActive denial carrying the blocking cooldown.
type CooldownError struct {
	CooldownID uuid.UUID
	Remaining  time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrCooldownActive, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

// TooEarlyError is a TooEarly denial carrying the time left until completion is allowed.
type TooEarlyError struct {
	Remaining time.Duration
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("%s: %s remaining", ErrTooEarly, e.Remaining.Round(time.Second))
}

func (e *TooEarlyError) Is(target error) bool {
	return target == ErrTooEarly
}

// DuplicateError is a DuplicateWithinWindow denial carrying when the window reopens.
type DuplicateError struct {
	RetryAt time.Time
}

func (e *DuplicateError) Error() string {
	return ErrDuplicateWithinWindow.Error()
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicateWithinWindow
}
