package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/GlebRadaev/watchearn/internal/domain"
	"github.com/GlebRadaev/watchearn/internal/dto"
	"github.com/GlebRadaev/watchearn/internal/service/authservice"
	"github.com/GlebRadaev/watchearn/pkg/utils"
)

const (
	minLoginLen    = 3
	maxLoginLen    = 50
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores the rest
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GenerateToken(userID int, role string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func decodeCredentials(r *http.Request) (dto.CredentialsDTO, bool) {
	var req dto.CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, false
	}
	req.Login = strings.TrimSpace(req.Login)
	return req, req.Login != "" && req.Password != ""
}

func validForRegistration(c dto.CredentialsDTO) bool {
	n := utf8.RuneCountInString(c.Login)
	return n >= minLoginLen && n <= maxLoginLen &&
		len(c.Password) >= minPasswordLen && len(c.Password) <= maxPasswordLen
}

// respondWithToken signs a token for user and returns it in the header and the body.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *domain.User, message string) {
	token, err := h.authService.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		Message: message,
		Token:   token,
		Role:    user.Role,
	})
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account with an empty wallet and returns a bearer token. Logins are 3 to 50 characters, passwords 8 to 72 bytes.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsDTO	true	"Login and password"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"User already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(r)
	if !ok || !validForRegistration(creds) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), creds.Login, creds.Password)
	switch {
	case errors.Is(err, authservice.ErrLoginTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithToken(w, user, "User successfully registered")
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Exchanges login and password for a bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CredentialsDTO	true	"Login and password"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		403		{object}	utils.Response	"Account deactivated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), creds.Login, creds.Password)
	switch {
	case errors.Is(err, authservice.ErrInvalidCredentials):
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	case errors.Is(err, domain.ErrUserInactive):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
		return
	case err != nil:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.respondWithToken(w, user, "User successfully authenticated")
}
