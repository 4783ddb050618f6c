package get_current_user

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/api/middleware"
	"github.com/lockenroll/LR-SalonService/internal/service/users"
	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
)

const msgMissingIdentity = "Anmeldung erforderlich"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/me - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	user, err := h.service.GetByID(r.Context(), identity.UserID)
	if err != nil {
		// Аварийный администратор существует только в конфигурации,
		// для него отвечаем данными из токена
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Info("GET /auth/me - Identity %s not in user store, answering from token", identity.UserID)
			handlers.RespondJSON(w, http.StatusOK, &models.UserResponse{
				ID:       identity.UserID,
				Username: identity.Username,
				Role:     string(identity.Role),
			})
			return
		}
		h.logger.Error("GET /auth/me - Failed to get user: user_id=%s, error=%v", identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
