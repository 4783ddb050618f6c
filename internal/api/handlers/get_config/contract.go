package get_config

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

type ConfigService interface {
	GetConfig(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
