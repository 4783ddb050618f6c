package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/domain"
	getAvailableSlots "github.com/lockenroll/LR-SalonService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "Datum ist erforderlich"
	msgInvalidDate = "ungültiges Datumsformat, erwartet JJJJ-MM-TT"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/appointments/available-slots?date=2026-03-14&staffId=martina
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /appointments/available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /appointments/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}
	if staffID := r.URL.Query().Get("staffId"); staffID != "" {
		req.StaffID = &staffID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /appointments/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /appointments/available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/available-slots - %d slots available: date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
