package business_hours

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

type ConfigService interface {
	GetBusinessHours(ctx context.Context) (*models.BusinessHoursResponse, error)
	UpdateBusinessHours(ctx context.Context, hours map[int]domain.DayHours) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
