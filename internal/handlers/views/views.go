package views

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/handlers/apierr"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
	"github.com/GlebRadaev/watchearn/internal/service/viewservice"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

type Service interface {
	SubmitView(ctx context.Context, in viewservice.View) (*viewservice.Result, error)
}

type ViewHandler struct {
	viewService Service
	clock       clock.Clock
}

func New(viewService Service, clk clock.Clock) *ViewHandler {
	return &ViewHandler{
		viewService: viewService,
		clock:       clk,
	}
}

// SubmitView godoc
//
//	@Summary		Report a finished view
//	@Description	Evaluates the view against the daily, IP, duplicate and cooldown limits. An eligible view credits the video reward and starts the cooldown.
//	@Tags			Views
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			videoID	path		string					true	"Video ID"
//	@Param			request	body		dto.SubmitViewRequestDTO	true	"Playback details"
//	@Success		200		{object}	dto.SubmitViewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	dto.DenialDTO	"Account deactivated"
//	@Failure		404		{object}	dto.DenialDTO	"Video not found"
//	@Failure		409		{object}	dto.DenialDTO	"Already earned from this video within 24h"
//	@Failure		422		{object}	dto.DenialDTO	"Video not earning or view incomplete"
//	@Failure		429		{object}	dto.DenialDTO	"Daily, IP or cooldown limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/videos/{videoID}/views [post]
func (h *ViewHandler) SubmitView(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitViewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.viewService.SubmitView(r.Context(), viewservice.View{
		UserID:    userID,
		VideoID:   chi.URLParam(r, "videoID"),
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		StartedAt: req.StartedAt,
		EndedAt:   req.EndedAt,
		Completed: req.Completed,
	})
	if err != nil {
		apierr.Write(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitViewResponseDTO{
		ViewID:   result.View.ID,
		Earning:  dto.NewEarning(result.Earning),
		Balance:  dto.NewBalance(result.Balance, result.Balance.DailyViewCount),
		Cooldown: dto.NewCooldown(result.Cooldown, h.clock.Now()),
	})
}
