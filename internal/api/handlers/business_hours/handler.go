package business_hours

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgConfigNotFound     = "Saloneinstellungen nicht gefunden"
	msgInvalidHours       = "ungültige Öffnungszeiten"
)

// UpdateBusinessHoursRequest HTTP запрос на замену часов работы
type UpdateBusinessHoursRequest struct {
	BusinessHours map[int]domain.DayHours `json:"businessHours"`
}

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

// HandleGet GET /api/config/business-hours
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetBusinessHours(r.Context())
	if err != nil {
		if errors.Is(err, salonconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /config/business-hours - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /config/business-hours - Failed to get business hours: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/config/business-hours
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config/business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBusinessHours(r.Context(), req.BusinessHours)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrConfigNotFound):
			h.logger.Warn("PUT /config/business-hours - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config/business-hours - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /config/business-hours - Failed to update business hours: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config/business-hours - Business hours updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
