package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "ungültiges Datumsformat, erwartet JJJJ-MM-TT"
	msgInvalidStatus = "ungültiger Terminstatus"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments?date=2026-03-14&status=confirmed&staffId=martina
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if staffID := query.Get("staffId"); staffID != "" {
		req.StaffID = &staffID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - %d appointments retrieved", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
