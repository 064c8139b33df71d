package balance

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/handlers/apierr"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	ViewsToday(b *domain.Balance, now time.Time) int
	GetEarnings(ctx context.Context, userID int, limit int) ([]domain.EarningRecord, error)
	GetDailyStats(ctx context.Context, userID int, now time.Time) ([]domain.DailyEarnings, error)
}

type BalanceHandler struct {
	ledger         Service
	clock          clock.Clock
	maxViewsPerDay int
}

func New(ledger Service, clk clock.Clock, maxViewsPerDay int) *BalanceHandler {
	return &BalanceHandler{
		ledger:         ledger,
		clock:          clk,
		maxViewsPerDay: maxViewsPerDay,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Available balance, lifetime earnings, reserved withdrawals and today's earning views.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	resp := dto.NewBalance(balance, h.ledger.ViewsToday(balance, h.clock.Now()))
	resp.MaxViewsPerDay = h.maxViewsPerDay
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetEarnings godoc
//
//	@Summary		Earning history
//	@Description	Earning records of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum records (default 100)"
//	@Success		200		{array}		dto.EarningDTO
//	@Success		204		{object}	utils.Response	"No earnings yet"
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/earnings [get]
func (h *BalanceHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
		return
	}

	records, err := h.ledger.GetEarnings(r.Context(), userID, limit)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if len(records) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No earnings yet")
		return
	}

	response := make([]dto.EarningDTO, len(records))
	for i := range records {
		response[i] = dto.NewEarning(&records[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetDailyStats godoc
//
//	@Summary		Daily earnings
//	@Description	Earned amount and count per calendar day over the last 30 days, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DailyEarningsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/earnings/stats [get]
func (h *BalanceHandler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.ledger.GetDailyStats(r.Context(), userID, h.clock.Now())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := make([]dto.DailyEarningsDTO, len(stats))
	for i, d := range stats {
		response[i] = dto.NewDailyEarnings(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, strconv.ErrSyntax
	}
	return limit, nil
}
