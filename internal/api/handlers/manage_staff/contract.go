package manage_staff

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

type ConfigService interface {
	GetStaff(ctx context.Context) (*models.StaffResponse, error)
	AddStaff(ctx context.Context, req *models.StaffRequest) (*domain.Staff, error)
	UpdateStaff(ctx context.Context, id string, req *models.StaffRequest) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
