package get_current_user

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
)

type UserService interface {
	GetByID(ctx context.Context, id string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
