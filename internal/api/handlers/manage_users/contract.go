package manage_users

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error)
	List(ctx context.Context) (*models.UserListResponse, error)
	Update(ctx context.Context, id string, actor models.Actor, req *models.UpdateUserRequest) (*models.UserResponse, error)
	Delete(ctx context.Context, id string, actor models.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
