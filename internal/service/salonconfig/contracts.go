package salonconfig

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// ConfigStore интерфейс хранилища конфигурации салона
type ConfigStore interface {
	Load(ctx context.Context) (*domain.SalonConfig, error)
	Save(ctx context.Context, cfg *domain.SalonConfig) error
}

// TransactionManager интерфейс для управления транзакциями.
// Мутации конфигурации выполняются как read-modify-write в транзакции,
// чтобы параллельные правки администраторов не терялись.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
