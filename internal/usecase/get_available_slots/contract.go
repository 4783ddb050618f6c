package get_available_slots

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListWithFilter получает записи по фильтру (дата, статус, мастер)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ConfigStore интерфейс хранилища конфигурации салона
type ConfigStore interface {
	Load(ctx context.Context) (*domain.SalonConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
