package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidID          = "ungültige Termin-ID"
	msgNotFound           = "Termin nicht gefunden"
	msgInvalidStatus      = "ungültiger Terminstatus oder Statuswechsel"
	msgServiceNotFound    = "die gewählte Dienstleistung wurde nicht gefunden"
	msgStaffNotFound      = "der gewählte Mitarbeiter wurde nicht gefunden"
	msgSlotTaken          = "der Zieltermin ist bereits vergeben"
	msgInvalidInput       = "ungültige Eingabedaten"
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

// Handle PUT /api/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, appointments.ErrStaffNotFound):
			h.logger.Warn("PUT /appointments/{id} - Staff not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PUT /appointments/{id} - Invalid status transition: appointment_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrSlotTaken):
			h.logger.Warn("PUT /appointments/{id} - Target slot taken: appointment_id=%d", id)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
