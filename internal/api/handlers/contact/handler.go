package contact

import (
	"errors"
	"net/http"

	"github.com/lockenroll/LR-SalonService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgMissingFields      = "Bitte alle Felder ausfüllen"
	msgInvalidEmail       = "Bitte eine gültige E-Mail-Adresse angeben"
	msgSendFailed         = "Fehler beim Senden der Kontaktanfrage"
	msgSent               = "Kontaktanfrage erfolgreich gesendet"
)

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.validate(); err != nil {
		h.logger.Warn("POST /contact - Validation failed: %v", err)
		if errors.Is(err, errInvalidEmail) {
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	if err := h.notifier.SendContactForm(req.Name, req.Email, req.Message); err != nil {
		h.logger.Error("POST /contact - Failed to forward contact form: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSendFailed)
		return
	}

	h.logger.Info("POST /contact - Contact form forwarded: from=%q", req.Email)
	handlers.RespondJSON(w, http.StatusOK, ContactResponse{Message: msgSent})
}
