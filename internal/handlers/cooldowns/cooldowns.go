package cooldowns

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/watchearn/internal/clock"
	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/handlers/apierr"
	"github.com/GlebRadaev/watchearn/pkg/auth"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

type Service interface {
	Current(ctx context.Context, userID int) (*domain.Cooldown, error)
	Complete(ctx context.Context, id uuid.UUID, userID int, now time.Time) (*domain.Cooldown, error)
	Interrupt(ctx context.Context, id uuid.UUID, userID int, now time.Time) (*domain.Cooldown, error)
}

type CooldownHandler struct {
	cooldownService Service
	clock           clock.Clock
}

func New(cooldownService Service, clk clock.Clock) *CooldownHandler {
	return &CooldownHandler{
		cooldownService: cooldownService,
		clock:           clk,
	}
}

// Current godoc
//
//	@Summary		Active cooldown
//	@Description	The user's active cooldown with the time left, or 204 when there is none.
//	@Tags			Cooldowns
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CooldownDTO
//	@Success		204	{object}	utils.Response	"No active cooldown"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cooldown [get]
func (h *CooldownHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	cooldown, err := h.cooldownService.Current(r.Context(), userID)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	if cooldown == nil {
		utils.RespondWithError(w, http.StatusNoContent, "No active cooldown")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCooldown(cooldown, h.clock.Now()))
}

// Complete godoc
//
//	@Summary		Complete a cooldown
//	@Description	Confirms the rest period has elapsed. Fails with 409 TOO_EARLY before the full duration.
//	@Tags			Cooldowns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Cooldown ID"
//	@Success		200	{object}	dto.CooldownDTO
//	@Failure		400	{object}	utils.Response	"Invalid cooldown id"
//	@Failure		403	{object}	dto.DenialDTO	"Not the owner"
//	@Failure		404	{object}	dto.DenialDTO	"Cooldown not found"
//	@Failure		409	{object}	dto.DenialDTO	"Already terminal or too early"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cooldowns/{id}/complete [post]
func (h *CooldownHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.cooldownService.Complete)
}

// Interrupt godoc
//
//	@Summary		Interrupt a cooldown
//	@Description	Ends the cooldown early, e.g. when the page is hidden or closed. Grants nothing.
//	@Tags			Cooldowns
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Cooldown ID"
//	@Success		200	{object}	dto.CooldownDTO
//	@Failure		400	{object}	utils.Response	"Invalid cooldown id"
//	@Failure		403	{object}	dto.DenialDTO	"Not the owner"
//	@Failure		404	{object}	dto.DenialDTO	"Cooldown not found"
//	@Failure		409	{object}	dto.DenialDTO	"Already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cooldowns/{id}/interrupt [post]
func (h *CooldownHandler) Interrupt(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.cooldownService.Interrupt)
}

type transitionFn func(ctx context.Context, id uuid.UUID, userID int, now time.Time) (*domain.Cooldown, error)

func (h *CooldownHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid cooldown id")
		return
	}

	now := h.clock.Now()
	cooldown, err := fn(r.Context(), id, userID, now)
	if err != nil {
		apierr.Write(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewCooldown(cooldown, now))
}
