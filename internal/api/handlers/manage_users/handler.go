package manage_users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/api/middleware"
	"github.com/lockenroll/LR-SalonService/internal/service/users"
	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgMissingIdentity    = "Anmeldung erforderlich"
	msgUserNotFound       = "Benutzer nicht gefunden"
	msgUsernameTaken      = "Benutzername ist bereits vergeben"
	msgAccessDenied       = "Zugriff verweigert"
	msgInvalidInput       = "ungültige Eingabedaten"
)

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

// HandleRegister POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUsernameTaken):
			h.logger.Warn("POST /auth/register - Username taken: username=%q", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to create user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User created: user_id=%s, username=%q", result.ID, result.Username)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/auth/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /auth/users - Failed to list users: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /auth/users - %d users retrieved", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/auth/users/{userId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["userId"]

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /auth/users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor := models.Actor{UserID: identity.UserID, Role: identity.Role}
	result, err := h.service.Update(r.Context(), id, actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PUT /auth/users/{id} - User not found: user_id=%s", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("PUT /auth/users/{id} - Access denied: user_id=%s, actor=%s", id, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PUT /auth/users/{id} - Invalid input: user_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /auth/users/{id} - Failed to update user: user_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /auth/users/{id} - User updated: user_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/auth/users/{userId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["userId"]

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	actor := models.Actor{UserID: identity.UserID, Role: identity.Role}
	if err := h.service.Delete(r.Context(), id, actor); err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("DELETE /auth/users/{id} - User not found: user_id=%s", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("DELETE /auth/users/{id} - Invalid request: user_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("DELETE /auth/users/{id} - Failed to delete user: user_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /auth/users/{id} - User deleted: user_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
