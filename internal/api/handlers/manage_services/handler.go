package manage_services

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
	msgServiceNotFound    = "Dienstleistung nicht gefunden"
	msgDuplicateID        = "Dienstleistungs-ID ist bereits vergeben"
	msgInvalidInput       = "ungültige Dienstleistungsdaten"
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

// HandleList GET /api/config/services
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetServices(r.Context())
	if err != nil {
		if errors.Is(err, salonconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /config/services - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /config/services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/config/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /config/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddService(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			h.logger.Warn("POST /config/services - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrDuplicateID):
			h.logger.Warn("POST /config/services - Duplicate service id: %v", err)
			handlers.RespondConflict(w, msgDuplicateID)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("POST /config/services - Invalid service: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /config/services - Failed to add service: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /config/services - Service added: service_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/config/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceId"]

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrServiceNotFound):
			h.logger.Warn("PUT /config/services/{id} - Service not found: service_id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config/services/{id} - Invalid service: service_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /config/services/{id} - Failed to update service: service_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config/services/{id} - Service updated: service_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/config/services/{serviceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["serviceId"]

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrServiceNotFound):
			h.logger.Warn("DELETE /config/services/{id} - Service not found: service_id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /config/services/{id} - Failed to delete service: service_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /config/services/{id} - Service deleted: service_id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
