// Package apierr maps engine errors to HTTP responses.
package apierr

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrDailyLimitExceeded),
		errors.Is(err, domain.ErrIPLimitExceeded),
		errors.Is(err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrDuplicateWithinWindow),
		errors.Is(err, domain.ErrAlreadyTerminal),
		errors.Is(err, domain.ErrTooEarly):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrVideoNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserInactive),
		errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrVideoUnavailable),
		errors.Is(err, domain.ErrViewIncomplete),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingPaymentInfo),
		errors.Is(err, domain.ErrInvalidPaymentDetails),
		errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransient):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Write answers with the status of err. Policy denials carry their reason code and, where
// known, the time until a retry can succeed; other errors are logged and hidden.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	if !domain.IsPolicyDenial(err) {
		if status == http.StatusServiceUnavailable {
			w.Header().Set("Retry-After", "1")
			utils.RespondWithError(w, status, "Service temporarily unavailable, try again")
			return
		}
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}

	body := dto.DenialDTO{
		Message: err.Error(),
		Code:    domain.DenyReason(err),
	}

	var (
		cooldownErr  *domain.CooldownError
		tooEarlyErr  *domain.TooEarlyError
		duplicateErr *domain.DuplicateError
	)
	switch {
	case errors.As(err, &cooldownErr):
		id := cooldownErr.CooldownID
		body.CooldownID = &id
		body.RemainingMS = cooldownErr.Remaining.Milliseconds()
		setRetryAfter(w, cooldownErr.Remaining)
	case errors.As(err, &tooEarlyErr):
		body.RemainingMS = tooEarlyErr.Remaining.Milliseconds()
		setRetryAfter(w, tooEarlyErr.Remaining)
	case errors.As(err, &duplicateErr):
		retryAt := duplicateErr.RetryAt
		body.RetryAt = &retryAt
	}

	utils.RespondWithJSON(w, status, body)
}

func setRetryAfter(w http.ResponseWriter, d time.Duration) {
	seconds := int64(math.Ceil(d.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
}
