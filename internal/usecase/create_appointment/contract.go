package create_appointment

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ConfigStore интерфейс хранилища конфигурации салона
type ConfigStore interface {
	Load(ctx context.Context) (*domain.SalonConfig, error)
}

// Notifier отправляет клиенту подтверждение записи.
// Ошибка отправки логируется и никогда не отменяет созданную запись.
type Notifier interface {
	SendAppointmentConfirmation(appt *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
