package update_config

import (
	"context"

	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
