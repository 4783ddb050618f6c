package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubNotifier struct {
	name, email, message string
	err                  error
}

func (s *stubNotifier) SendContactForm(name, email, message string) error {
	s.name, s.email, s.message = name, email, message
	return s.err
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ForwardsForm(t *testing.T) {
	notifier := &stubNotifier{}
	h := NewHandler(notifier, nopLogger{})

	rec := post(t, h, `{"name":"Anna","email":"anna@example.de","message":"Habt ihr samstags offen?"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Anna", notifier.name)
	assert.Equal(t, "anna@example.de", notifier.email)
	assert.Equal(t, "Habt ihr samstags offen?", notifier.message)
	assert.Contains(t, rec.Body.String(), "Kontaktanfrage erfolgreich gesendet")
}

func TestHandle_MissingFields(t *testing.T) {
	notifier := &stubNotifier{}
	h := NewHandler(notifier, nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"anna@example.de","message":"Hallo"}`},
		{"no email", `{"name":"Anna","message":"Hallo"}`},
		{"no message", `{"name":"Anna","email":"anna@example.de"}`},
		{"blank message", `{"name":"Anna","email":"anna@example.de","message":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Bitte alle Felder ausfüllen")
		})
	}

	// Ничего не отправлено
	assert.Empty(t, notifier.email)
}

func TestHandle_InvalidEmail(t *testing.T) {
	h := NewHandler(&stubNotifier{}, nopLogger{})

	rec := post(t, h, `{"name":"Anna","email":"keine-mail","message":"Hallo"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bitte eine gültige E-Mail-Adresse angeben")
}

func TestHandle_SendFailure(t *testing.T) {
	h := NewHandler(&stubNotifier{err: errors.New("smtp down")}, nopLogger{})

	rec := post(t, h, `{"name":"Anna","email":"anna@example.de","message":"Hallo"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fehler beim Senden der Kontaktanfrage")
}
