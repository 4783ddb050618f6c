package models

import (
	"errors"
	"time"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date    *time.Time `json:"date,omitempty"`    // Фильтр по дате (опционально)
	Status  *string    `json:"status,omitempty"`  // Фильтр по статусу (опционально)
	StaffID *string    `json:"staffId,omitempty"` // Фильтр по мастеру (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:    r.Date,
		StaffID: r.StaffID,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateAppointmentRequest запрос на частичное обновление записи.
// nil-поля не изменяются.
type UpdateAppointmentRequest struct {
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	ServiceID     *string `json:"serviceId,omitempty"` // Переразрешается в свежий снимок каталога
	StaffID       *string `json:"staffId,omitempty"`   // Переразрешается в свежий снимок каталога
	Date          *string `json:"date,omitempty"`      // "2026-03-14"
	StartTime     *string `json:"startTime,omitempty"` // "10:00"
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// Response модели

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ServiceSnapshotResponse снимок услуги на момент записи
type ServiceSnapshotResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// StaffSnapshotResponse снимок мастера на момент записи
type StaffSnapshotResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID       int64                   `json:"id"`
	Customer CustomerResponse        `json:"customer"`
	Service  ServiceSnapshotResponse `json:"service"`
	Staff    StaffSnapshotResponse   `json:"staff"`

	Date      string `json:"date"`      // "2026-03-14"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
	Status    string `json:"status"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID: a.ID,
		Customer: CustomerResponse{
			Name:  a.Customer.Name,
			Email: a.Customer.Email,
			Phone: a.Customer.Phone,
		},
		Service: ServiceSnapshotResponse{
			ID:       a.Service.ID,
			Name:     a.Service.Name,
			Price:    a.Service.Price,
			Duration: a.Service.Duration,
		},
		Staff: StaffSnapshotResponse{
			ID:   a.Staff.ID,
			Name: a.Staff.Name,
		},
		Date:      a.Date.Format(domain.DateFormat),
		StartTime: a.StartTime.String(),
		EndTime:   a.EndTime.String(),
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	list := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		list = append(list, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: list}
}

// ToDomainStatus валидирует и конвертирует строковый статус
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
