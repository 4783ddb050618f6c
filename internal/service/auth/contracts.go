package auth

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// UserStore интерфейс хранилища пользователей
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
