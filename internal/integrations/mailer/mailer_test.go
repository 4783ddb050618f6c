package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestFormatDateDE(t *testing.T) {
	appt := &domain.Appointment{
		// 2026-03-10 - вторник
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "Dienstag, 10. März 2026", formatDateDE(appt))
}

func TestBuildMessage_MultipartAlternative(t *testing.T) {
	msg := string(buildMessage("info@lockenroll.de", "anna@example.de", "Terminbestätigung", "Text", "<p>HTML</p>"))

	assert.Contains(t, msg, "From: info@lockenroll.de\r\n")
	assert.Contains(t, msg, "To: anna@example.de\r\n")
	assert.Contains(t, msg, "Content-Type: multipart/alternative")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(t, msg, "Content-Type: text/html; charset=utf-8")
	assert.Contains(t, msg, "Text\r\n")
	assert.Contains(t, msg, "<p>HTML</p>\r\n")
}

func TestSend_DisabledClientDoesNotFail(t *testing.T) {
	c := NewClient("", 0, "", false, nopLogger{})
	assert.NoError(t, c.Send("anna@example.de", "Test", "Text", ""))
}

func TestSendContactForm_Disabled(t *testing.T) {
	c := NewClient("", 0, "", false, nopLogger{})
	assert.NoError(t, c.SendContactForm("Anna", "anna@example.de", "Habt ihr samstags offen?"))
}

func TestWithContactAddress(t *testing.T) {
	c := NewClient("", 0, "info@lockenroll.de", false, nopLogger{})
	assert.Equal(t, "info@lockenroll.de", c.contact)

	c = c.WithContactAddress("kontakt@lockenroll.de")
	assert.Equal(t, "kontakt@lockenroll.de", c.contact)

	// Пустое значение не сбрасывает адрес
	c = c.WithContactAddress("")
	assert.Equal(t, "kontakt@lockenroll.de", c.contact)
}

func TestSendAppointmentConfirmation_Disabled(t *testing.T) {
	c := NewClient("", 0, "", false, nopLogger{})

	appt := &domain.Appointment{
		Customer: domain.Customer{
			Name:  "Anna Schmidt",
			Email: "anna@example.de",
		},
		Service:   domain.ServiceSnapshot{Name: "Herrenhaarschnitt"},
		Staff:     domain.StaffSnapshot{Name: "Martina"},
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
	}

	require.NoError(t, c.SendAppointmentConfirmation(appt))
}
