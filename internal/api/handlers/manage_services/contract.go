package manage_services

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

type ConfigService interface {
	GetServices(ctx context.Context) (*models.ServicesResponse, error)
	AddService(ctx context.Context, req *models.ServiceRequest) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
