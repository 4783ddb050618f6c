package create_appointment

import (
	"time"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Customer  domain.Customer  // Контактные данные клиента
	ServiceID string           // ID услуги из каталога
	StaffID   string           // ID мастера из каталога
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Notes     *string          // Дополнительные пожелания (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	Customer  domain.Customer
	Service   domain.ServiceSnapshot // Снимок услуги на момент записи
	Staff     domain.StaffSnapshot   // Снимок мастера на момент записи
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:        appt.ID,
		Customer:  appt.Customer,
		Service:   appt.Service,
		Staff:     appt.Staff,
		Date:      appt.Date,
		StartTime: appt.StartTime,
		EndTime:   appt.EndTime,
		Status:    string(appt.Status),
		Notes:     appt.Notes,
		CreatedAt: appt.CreatedAt,
		UpdatedAt: appt.UpdatedAt,
	}
}
