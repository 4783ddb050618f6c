package update_config

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidInput       = "ungültige Konfiguration"
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

// Handle PUT /api/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrInvalidInput), errors.Is(err, salonconfig.ErrDuplicateID):
			h.logger.Warn("PUT /config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /config - Failed to update config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated: %d services, %d staff", len(result.Services), len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
