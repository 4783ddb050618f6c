package manage_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgConfigNotFound     = "Saloneinstellungen nicht gefunden"
	msgStaffNotFound      = "Mitarbeiter nicht gefunden"
	msgDuplicateID        = "Mitarbeiter-ID ist bereits vergeben"
	msgInvalidInput       = "ungültige Mitarbeiterdaten"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/config/staff
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetStaff(r.Context())
	if err != nil {
		if errors.Is(err, salonconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /config/staff - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /config/staff - Failed to list staff: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/config/staff
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /config/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddStaff(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			h.logger.Warn("POST /config/staff - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrDuplicateID):
			h.logger.Warn("POST /config/staff - Duplicate staff id: %v", err)
			handlers.RespondConflict(w, msgDuplicateID)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("POST /config/staff - Invalid staff: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /config/staff - Failed to add staff: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /config/staff - Staff added: staff_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/config/staff/{staffId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["staffId"]

	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrStaffNotFound):
			h.logger.Warn("PUT /config/staff/{id} - Staff not found: staff_id=%s", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config/staff/{id} - Invalid staff: staff_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /config/staff/{id} - Failed to update staff: staff_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config/staff/{id} - Staff updated: staff_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/config/staff/{staffId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["staffId"]

	if err := h.service.DeleteStaff(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrStaffNotFound):
			h.logger.Warn("DELETE /config/staff/{id} - Staff not found: staff_id=%s", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("DELETE /config/staff/{id} - Failed to delete staff: staff_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /config/staff/{id} - Staff deleted: staff_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
