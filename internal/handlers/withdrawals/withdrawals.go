package withdrawals

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/handlers/apierr"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/money"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, userID int, amount int64, method string, details map[string]string, now time.Time) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	UpdatePaymentInfo(ctx context.Context, userID int, method string, details map[string]string) error
}

type WithdrawalHandler struct {
	withdrawalService Service
	clock             clock.Clock
}

func New(withdrawalService Service, clk clock.Clock) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
		clock:             clk,
	}
}

// RequestWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserves the amount from the available balance and creates a pending withdrawal. Payment method and details default to the saved payment info.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	dto.DenialDTO	"Insufficient balance"
//	@Failure		403		{object}	dto.DenialDTO	"Account deactivated"
//	@Failure		422		{object}	dto.DenialDTO	"Invalid amount or payment info"
//	@Failure		429		{object}	utils.Response	"Too many withdrawal requests"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := money.ToCents(req.Amount)
	if err != nil {
		apierr.Write(w, domain.ErrInvalidAmount)
		return
	}

	withdrawal, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, amount, req.PaymentMethod, req.PaymentDetails, h.clock.Now())
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawal(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of the authenticated user, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response		"Withdrawals not found"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	withdrawals, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = dto.NewWithdrawal(&withdrawals[i])
		response[i].UserID = 0
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePaymentInfo godoc
//
//	@Summary		Save payment info
//	@Description	Stores the default payment method and details used by withdrawal requests.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentInfoDTO	true	"Payment method and details"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	dto.DenialDTO	"Missing or invalid payment info"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payment-info [put]
func (h *WithdrawalHandler) UpdatePaymentInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PaymentInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.withdrawalService.UpdatePaymentInfo(r.Context(), userID, req.PaymentMethod, req.PaymentDetails); err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment info updated"})
}
