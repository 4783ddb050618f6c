package salonconfig

import (
	"fmt"
	"strings"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// validateConfig проверяет целостность полной конфигурации
func validateConfig(cfg *domain.SalonConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidInput)
	}

	if cfg.AppointmentDuration <= 0 {
		return fmt.Errorf("%w: appointment duration must be positive", ErrInvalidInput)
	}

	if err := validateBusinessHours(cfg.BusinessHours); err != nil {
		return err
	}

	seenServices := make(map[string]struct{}, len(cfg.Services))
	for i := range cfg.Services {
		svc := &cfg.Services[i]
		if err := validateService(svc); err != nil {
			return err
		}
		if _, ok := seenServices[svc.ID]; ok {
			return fmt.Errorf("%w: service %s", ErrDuplicateID, svc.ID)
		}
		seenServices[svc.ID] = struct{}{}
	}

	seenStaff := make(map[string]struct{}, len(cfg.Staff))
	for i := range cfg.Staff {
		m := &cfg.Staff[i]
		if err := validateStaff(m); err != nil {
			return err
		}
		if _, ok := seenStaff[m.ID]; ok {
			return fmt.Errorf("%w: staff %s", ErrDuplicateID, m.ID)
		}
		seenStaff[m.ID] = struct{}{}
	}

	return nil
}

// validateBusinessHours проверяет часы работы по дням недели (0 - воскресенье)
func validateBusinessHours(hours map[int]domain.DayHours) error {
	if len(hours) == 0 {
		return fmt.Errorf("%w: business hours are required", ErrInvalidInput)
	}

	for day, dh := range hours {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: weekday %d is out of range", ErrInvalidInput, day)
		}
		if !dh.IsOpen {
			continue
		}

		if err := dh.Start.Validate(); err != nil {
			return fmt.Errorf("%w: weekday %d open time: %v", ErrInvalidInput, day, err)
		}
		if err := dh.End.Validate(); err != nil {
			return fmt.Errorf("%w: weekday %d close time: %v", ErrInvalidInput, day, err)
		}
		if !dh.Start.IsBefore(dh.End) {
			return fmt.Errorf("%w: weekday %d opens at %s but closes at %s", ErrInvalidInput, day, dh.Start, dh.End)
		}
	}

	return nil
}

// validateService проверяет услугу каталога
func validateService(svc *domain.Service) error {
	if strings.TrimSpace(svc.ID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(svc.Name) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: service price must not be negative", ErrInvalidInput)
	}
	if svc.Duration < domain.MinServiceDurationMinutes || svc.Duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: service duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

// validateStaff проверяет мастера
func validateStaff(m *domain.Staff) error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}
	for _, day := range m.WorkingDays {
		if day < 0 || day > 6 {
			return fmt.Errorf("%w: working day %d is out of range", ErrInvalidInput, day)
		}
	}
	return nil
}
