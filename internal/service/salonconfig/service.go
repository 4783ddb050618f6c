package salonconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	configRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
)

// Service сервис для работы с конфигурацией салона
type Service struct {
	configStore ConfigStore
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	configStore ConfigStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		configStore: configStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetConfig возвращает полную конфигурацию салона
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// UpdateConfig полностью заменяет конфигурацию салона.
// Конфигурация подменяется атомарно: читатели видят либо старую,
// либо новую версию целиком.
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: replacing salon config")

	cfg := req.ToDomain()
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("UpdateConfig: validation failed: %v", err)
		return nil, err
	}

	if err := s.configStore.Save(ctx, cfg); err != nil {
		s.logger.Error("UpdateConfig: failed to save config: %v", err)
		return nil, fmt.Errorf("%w: UpdateConfig - failed to save config: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: config replaced, %d services, %d staff", len(cfg.Services), len(cfg.Staff))
	return models.FromDomainConfig(cfg), nil
}

// GetBusinessHours возвращает часы работы по дням недели
func (s *Service) GetBusinessHours(ctx context.Context) (*models.BusinessHoursResponse, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.BusinessHoursResponse{BusinessHours: cfg.BusinessHours}, nil
}

// UpdateBusinessHours заменяет часы работы, не затрагивая каталоги
func (s *Service) UpdateBusinessHours(ctx context.Context, hours map[int]domain.DayHours) (*models.BusinessHoursResponse, error) {
	s.logger.Info("UpdateBusinessHours: updating business hours")

	if err := validateBusinessHours(hours); err != nil {
		s.logger.Warn("UpdateBusinessHours: validation failed: %v", err)
		return nil, err
	}

	var updated *domain.SalonConfig
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}
		cfg.BusinessHours = hours
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: UpdateBusinessHours - failed to save config: %v", ErrInternal, err)
		}
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateBusinessHours: business hours updated")
	return &models.BusinessHoursResponse{BusinessHours: updated.BusinessHours}, nil
}

// GetServices возвращает каталог услуг
func (s *Service) GetServices(ctx context.Context) (*models.ServicesResponse, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ServicesResponse{Services: cfg.Services}, nil
}

// AddService добавляет услугу в каталог.
// Если ID не указан, генерируется новый.
func (s *Service) AddService(ctx context.Context, req *models.ServiceRequest) (*domain.Service, error) {
	s.logger.Info("AddService: adding service")

	service := domain.Service{
		ID:     uuid.NewString(),
		Active: true,
	}
	if req.ID != nil && *req.ID != "" {
		service.ID = *req.ID
	}
	applyServicePatch(&service, req)

	if err := validateService(&service); err != nil {
		s.logger.Warn("AddService: validation failed: %v", err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}
		if _, ok := cfg.ServiceByID(service.ID); ok {
			return fmt.Errorf("%w: service %s", ErrDuplicateID, service.ID)
		}
		cfg.Services = append(cfg.Services, service)
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: AddService - failed to save config: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddService: added service id=%s name=%q", service.ID, service.Name)
	return &service, nil
}

// UpdateService частично обновляет услугу в каталоге.
// Снимки в уже созданных записях не изменяются.
func (s *Service) UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*domain.Service, error) {
	s.logger.Info("UpdateService: updating service id=%s", id)

	var updated domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}

		idx := -1
		for i := range cfg.Services {
			if cfg.Services[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}

		service := cfg.Services[idx]
		applyServicePatch(&service, req)
		if err := validateService(&service); err != nil {
			return err
		}

		cfg.Services[idx] = service
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: UpdateService - failed to save config: %v", ErrInternal, err)
		}
		updated = service
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("UpdateService: %v", err)
		} else {
			s.logger.Error("UpdateService: %v", err)
		}
		return nil, err
	}

	s.logger.Info("UpdateService: updated service id=%s", id)
	return &updated, nil
}

// DeleteService удаляет услугу из каталога
func (s *Service) DeleteService(ctx context.Context, id string) error {
	s.logger.Info("DeleteService: deleting service id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}

		kept := cfg.Services[:0]
		found := false
		for _, svc := range cfg.Services {
			if svc.ID == id {
				found = true
				continue
			}
			kept = append(kept, svc)
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrServiceNotFound, id)
		}

		cfg.Services = kept
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: DeleteService - failed to save config: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteService: deleted service id=%s", id)
	return nil
}

// GetStaff возвращает список мастеров
func (s *Service) GetStaff(ctx context.Context) (*models.StaffResponse, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.StaffResponse{Staff: cfg.Staff}, nil
}

// AddStaff добавляет мастера.
// Если ID не указан, генерируется новый.
func (s *Service) AddStaff(ctx context.Context, req *models.StaffRequest) (*domain.Staff, error) {
	s.logger.Info("AddStaff: adding staff member")

	staff := domain.Staff{
		ID:     uuid.NewString(),
		Active: true,
	}
	if req.ID != nil && *req.ID != "" {
		staff.ID = *req.ID
	}
	applyStaffPatch(&staff, req)

	if err := validateStaff(&staff); err != nil {
		s.logger.Warn("AddStaff: validation failed: %v", err)
		return nil, err
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}
		if _, ok := cfg.StaffByID(staff.ID); ok {
			return fmt.Errorf("%w: staff %s", ErrDuplicateID, staff.ID)
		}
		cfg.Staff = append(cfg.Staff, staff)
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: AddStaff - failed to save config: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddStaff: added staff id=%s name=%q", staff.ID, staff.Name)
	return &staff, nil
}

// UpdateStaff частично обновляет мастера.
// Снимки в уже созданных записях не изменяются.
func (s *Service) UpdateStaff(ctx context.Context, id string, req *models.StaffRequest) (*domain.Staff, error) {
	s.logger.Info("UpdateStaff: updating staff id=%s", id)

	var updated domain.Staff
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}

		idx := -1
		for i := range cfg.Staff {
			if cfg.Staff[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrStaffNotFound, id)
		}

		staff := cfg.Staff[idx]
		applyStaffPatch(&staff, req)
		if err := validateStaff(&staff); err != nil {
			return err
		}

		cfg.Staff[idx] = staff
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: UpdateStaff - failed to save config: %v", ErrInternal, err)
		}
		updated = staff
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStaff: updated staff id=%s", id)
	return &updated, nil
}

// DeleteStaff удаляет мастера
func (s *Service) DeleteStaff(ctx context.Context, id string) error {
	s.logger.Info("DeleteStaff: deleting staff id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		cfg, err := s.load(txCtx)
		if err != nil {
			return err
		}

		kept := cfg.Staff[:0]
		found := false
		for _, m := range cfg.Staff {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrStaffNotFound, id)
		}

		cfg.Staff = kept
		if err := s.configStore.Save(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: DeleteStaff - failed to save config: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteStaff: deleted staff id=%s", id)
	return nil
}

// EnsureDefault сохраняет стартовую конфигурацию, если в базе еще нет никакой.
// Вызывается при старте сервиса, чтобы свежая инсталляция сразу принимала записи.
func (s *Service) EnsureDefault(ctx context.Context) error {
	_, err := s.configStore.Load(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, configRepo.ErrConfigNotFound) {
		return fmt.Errorf("%w: EnsureDefault - failed to load config: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureDefault: no salon config found, seeding defaults")
	if err := s.configStore.Save(ctx, defaultConfig()); err != nil {
		return fmt.Errorf("%w: EnsureDefault - failed to save config: %v", ErrInternal, err)
	}
	return nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context) (*domain.SalonConfig, error) {
	cfg, err := s.configStore.Load(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("load: salon config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("load: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}
	return cfg, nil
}

func applyServicePatch(service *domain.Service, req *models.ServiceRequest) {
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Active != nil {
		service.Active = *req.Active
	}
}

func applyStaffPatch(staff *domain.Staff, req *models.StaffRequest) {
	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Specialties != nil {
		staff.Specialties = req.Specialties
	}
	if req.Bio != nil {
		staff.Bio = *req.Bio
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}
	if req.WorkingDays != nil {
		staff.WorkingDays = req.WorkingDays
	}
}
