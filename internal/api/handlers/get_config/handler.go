package get_config

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig"
)

const msgConfigNotFound = "Saloneinstellungen nicht gefunden"

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

// Handle GET /api/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, salonconfig.ErrConfigNotFound) {
			h.logger.Warn("GET /config - Salon config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /config - Failed to get config: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
