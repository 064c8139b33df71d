package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/handlers/apierr"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

type Service interface {
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus, limit int) ([]domain.Withdrawal, error)
	Resolve(ctx context.Context, id uuid.UUID, outcome domain.WithdrawalStatus, notes string, now time.Time) (*domain.Withdrawal, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type AdminHandler struct {
	withdrawalService Service
	clock             clock.Clock
}

func New(withdrawalService Service, clk clock.Clock) *AdminHandler {
	return &AdminHandler{
		withdrawalService: withdrawalService,
		clock:             clk,
	}
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawals
//	@Description	All withdrawals, optionally filtered by status, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"pending, completed or rejected"
//	@Param			limit	query		int		false	"Maximum rows (default 100)"
//	@Success		200		{array}		dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		422		{object}	dto.DenialDTO	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}
	status := domain.WithdrawalStatus(r.URL.Query().Get("status"))

	withdrawals, err := h.withdrawalService.ListWithdrawals(r.Context(), status, limit)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = dto.NewWithdrawal(&withdrawals[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ResolveWithdrawal godoc
//
//	@Summary		Resolve a withdrawal
//	@Description	completed consumes the reservation; rejected returns the amount to the user's balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Withdrawal ID"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Outcome"
//	@Success		200		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	dto.DenialDTO	"Withdrawal not found"
//	@Failure		409		{object}	dto.DenialDTO	"Already resolved"
//	@Failure		422		{object}	dto.DenialDTO	"Unknown outcome"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/resolve [post]
func (h *AdminHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}
	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Resolve(r.Context(), id, domain.WithdrawalStatus(req.Outcome), req.Notes, h.clock.Now())
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawal(withdrawal))
}

// Stats godoc
//
//	@Summary		Platform totals
//	@Description	Total earned, completed and pending withdrawals.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsDTO
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.withdrawalService.Stats(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStats(stats))
}
