package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"simsea/internal/models"
	"simsea/internal/services"
)

type UserHandler struct {
	accounts *services.AccountService
	logger   logrus.FieldLogger
}

func NewUserHandler(accounts *services.AccountService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{accounts: accounts, logger: logger}
}

// @Tags Account
// @Summary List users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, "ListUsers", err)
		return
	}

	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
