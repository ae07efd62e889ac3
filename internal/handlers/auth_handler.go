package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"simsea/internal/config"
	"simsea/internal/middleware"
	"simsea/internal/models"
	"simsea/internal/services"
)

type AuthHandler struct {
	accounts  *services.AccountService
	sessions  sessions.Store
	secret    string
	expiresIn int64
	logger    logrus.FieldLogger
}

func NewAuthHandler(accounts *services.AccountService, store sessions.Store, cfg *config.Config, logger logrus.FieldLogger) *AuthHandler {
	expiresIn := cfg.JWTExpiresInSeconds
	if expiresIn <= 0 {
		expiresIn = 86400
	}
	return &AuthHandler{
		accounts:  accounts,
		sessions:  store,
		secret:    cfg.SecretKey,
		expiresIn: expiresIn,
		logger:    logger,
	}
}

// @Tags Auth
// @Summary Register a user account
// @Accept json
// @Produce json
// @Param body body models.RegisterRequest true "Register request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	user, err := h.accounts.Register(r.Context(), req, models.RoleUser)
	if err != nil {
		writeServiceError(w, h.logger, "Register", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// @Tags Auth
// @Summary Log in
// @Description Returns a bearer token and also starts a cookie session.
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeJSONErrorResponse(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
			return
		}
		writeServiceError(w, h.logger, "Login", err)
		return
	}

	actor := user.Actor()
	signed, err := middleware.NewToken(h.secret, actor, time.Duration(h.expiresIn)*time.Second)
	if err != nil {
		writeServiceError(w, h.logger, "Login", err)
		return
	}
	if err := middleware.StartSession(w, r, h.sessions, actor); err != nil {
		writeServiceError(w, h.logger, "Login", err)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   h.expiresIn,
		Username:    user.Username,
		Role:        user.Role,
	})
}

// @Tags Auth
// @Summary Log out
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.EndSession(w, r, h.sessions); err != nil {
		writeServiceError(w, h.logger, "Logout", err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Logged out")
}

// @Tags Auth
// @Summary Current actor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Actor
// @Failure 401 {object} map[string]interface{}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, actor)
}
