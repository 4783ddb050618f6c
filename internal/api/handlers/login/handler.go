package login

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/service/auth"
	"github.com/lockenroll/LR-SalonService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidCredentials = "Benutzername oder Passwort ist falsch"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Login failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User logged in: username=%q", result.User.Username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
