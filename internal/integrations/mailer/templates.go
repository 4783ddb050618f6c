package mailer

import (
	"fmt"
	"strings"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// немецкие названия дней недели для писем клиентам
var weekdaysDE = [...]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

var monthsDE = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// formatDateDE форматирует дату как "Dienstag, 3. Juni 2025"
func formatDateDE(appt *domain.Appointment) string {
	d := appt.Date
	return fmt.Sprintf("%s, %d. %s %d",
		weekdaysDE[int(d.Weekday())], d.Day(), monthsDE[int(d.Month())-1], d.Year())
}

// SendAppointmentConfirmation отправляет клиенту подтверждение записи
func (c *Client) SendAppointmentConfirmation(appt *domain.Appointment) error {
	subject := "Terminbestätigung - Locken'Roll Friseursalon"
	date := formatDateDE(appt)

	text := fmt.Sprintf(`Hallo %s,

vielen Dank für deine Terminbuchung bei Locken'Roll!

Termin-Details:
- Datum: %s
- Uhrzeit: %s Uhr
- Dienstleistung: %s
- Stylist: %s

Falls du Fragen hast oder deinen Termin ändern möchtest, kontaktiere uns bitte unter:
- Telefon: 06431 9716744
- E-Mail: info@lockenroll.de

Wir freuen uns auf deinen Besuch!

Mit freundlichen Grüßen,
Dein Locken'Roll Team`,
		appt.Customer.Name, date, appt.StartTime, appt.Service.Name, appt.Staff.Name)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Terminbestätigung</h2>
  <p>Hallo %s,</p>
  <p>vielen Dank für deine Terminbuchung bei Locken'Roll!</p>
  <table cellpadding="4">
    <tr><td><strong>Datum:</strong></td><td>%s</td></tr>
    <tr><td><strong>Uhrzeit:</strong></td><td>%s Uhr</td></tr>
    <tr><td><strong>Dienstleistung:</strong></td><td>%s</td></tr>
    <tr><td><strong>Stylist:</strong></td><td>%s</td></tr>
  </table>
  <p>Falls du Fragen hast oder deinen Termin ändern möchtest, erreichst du uns unter
  Telefon 06431 9716744 oder info@lockenroll.de.</p>
  <p>Wir freuen uns auf deinen Besuch!<br>Dein Locken'Roll Team</p>
</body>
</html>`,
		appt.Customer.Name, date, appt.StartTime, appt.Service.Name, appt.Staff.Name)

	err := c.Send(appt.Customer.Email, subject, text, html)
	c.observe("appointment_confirmation", err)
	return err
}

// SendContactForm пересылает салону заявку с формы обратной связи
func (c *Client) SendContactForm(name, email, message string) error {
	subject := "Neue Kontaktanfrage - Locken'Roll Website"

	text := fmt.Sprintf(`Neue Kontaktanfrage von der Website:

Name: %s
E-Mail: %s
Nachricht:
%s`, name, email, message)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Neue Kontaktanfrage</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>E-Mail:</strong> %s</p>
  <h3>Nachricht:</h3>
  <p>%s</p>
</body>
</html>`, name, email, strings.ReplaceAll(message, "\n", "<br>"))

	err := c.Send(c.contact, subject, text, html)
	c.observe("contact_form", err)
	return err
}
