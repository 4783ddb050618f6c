package create_appointment

import (
	"time"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	createAppointment "github.com/lockenroll/LR-SalonService/internal/usecase/create_appointment"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP запрос на создание записи
type CreateAppointmentRequest struct {
	Customer  CustomerPayload `json:"customer"`
	ServiceID string          `json:"serviceId"`
	StaffID   string          `json:"staffId"`
	Date      string          `json:"date"`      // "2026-03-14"
	StartTime string          `json:"startTime"` // "10:00"
	Notes     *string         `json:"notes,omitempty"`
}

// CustomerPayload контактные данные клиента
type CustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createAppointment.Request{
		Customer: domain.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		ServiceID: r.ServiceID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
	}, nil
}

// CreateAppointmentResponse HTTP ответ с созданной записью
type CreateAppointmentResponse struct {
	ID        int64           `json:"id"`
	Customer  CustomerPayload `json:"customer"`
	Service   ServicePayload  `json:"service"`
	Staff     StaffPayload    `json:"staff"`
	Date      string          `json:"date"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Status    string          `json:"status"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ServicePayload снимок услуги
type ServicePayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// StaffPayload снимок мастера
type StaffPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID: resp.ID,
		Customer: CustomerPayload{
			Name:  resp.Customer.Name,
			Email: resp.Customer.Email,
			Phone: resp.Customer.Phone,
		},
		Service: ServicePayload{
			ID:       resp.Service.ID,
			Name:     resp.Service.Name,
			Price:    resp.Service.Price,
			Duration: resp.Service.Duration,
		},
		Staff: StaffPayload{
			ID:   resp.Staff.ID,
			Name: resp.Staff.Name,
		},
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt,
	}
}
