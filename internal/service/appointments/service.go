package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	appointmentRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/appointment"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments/models"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	configStore     ConfigStore
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	configStore ConfigStore,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		configStore:     configStore,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией по дате, статусу и мастеру.
// Результат отсортирован по дате и времени начала по возрастанию.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, date=%v, status=%v, staff=%v",
		req.Date, req.Status, req.StaffID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	appts, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// Update частично обновляет запись: nil-поля запроса не изменяются.
// Смена услуги или мастера переразрешает снимок из актуального каталога,
// смена услуги или времени начала пересчитывает время окончания.
// Доступность нового слота здесь не перепроверяется - перенос записи
// администратором считается осознанным решением; конфликт по уникальному
// индексу все равно будет отклонен.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.applyUpdate(ctx, appt, req); err != nil {
		return nil, err
	}

	updated, err := s.appointmentRepo.Update(ctx, appt)
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			s.logger.Warn("Update: slot %s %s already taken for appointment id=%d",
				appt.Date.Format(domain.DateFormat), appt.StartTime, id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(updated), nil
}

// Delete безвозвратно удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// Вспомогательные методы

// applyUpdate применяет частичное обновление к доменной модели
func (s *Service) applyUpdate(ctx context.Context, appt *domain.Appointment, req *models.UpdateAppointmentRequest) error {
	if req.CustomerName != nil {
		appt.Customer.Name = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		appt.Customer.Email = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		appt.Customer.Phone = *req.CustomerPhone
	}
	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		appt.Notes = req.Notes
	}

	if req.Status != nil {
		newStatus, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for appointment id=%d", *req.Status, appt.ID)
			return fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		// Завершенные и отмененные записи - терминальные состояния
		if appt.IsTerminal() && newStatus != appt.Status {
			s.logger.Warn("Update: appointment id=%d is %s, cannot change to %s", appt.ID, appt.Status, newStatus)
			return fmt.Errorf("%w: appointment is already %s", ErrInvalidStatus, appt.Status)
		}
		appt.Status = newStatus
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		appt.Date = date
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, *req.StartTime)
		}
		appt.StartTime = start
	}

	// Переразрешение снимков требует актуального каталога
	if req.ServiceID != nil || req.StaffID != nil {
		cfg, err := s.configStore.Load(ctx)
		if err != nil {
			s.logger.Error("Update: failed to load config: %v", err)
			return fmt.Errorf("%w: Update - failed to load config: %v", ErrInternal, err)
		}

		if req.ServiceID != nil {
			service, ok := cfg.ServiceByID(*req.ServiceID)
			if !ok {
				s.logger.Warn("Update: unknown service %q for appointment id=%d", *req.ServiceID, appt.ID)
				return fmt.Errorf("%w: %s", ErrServiceNotFound, *req.ServiceID)
			}
			appt.Service = domain.ServiceSnapshot{
				ID:       service.ID,
				Name:     service.Name,
				Price:    service.Price,
				Duration: service.Duration,
			}
		}

		if req.StaffID != nil {
			staff, ok := cfg.StaffByID(*req.StaffID)
			if !ok {
				s.logger.Warn("Update: unknown staff %q for appointment id=%d", *req.StaffID, appt.ID)
				return fmt.Errorf("%w: %s", ErrStaffNotFound, *req.StaffID)
			}
			appt.Staff = domain.StaffSnapshot{
				ID:   staff.ID,
				Name: staff.Name,
			}
		}
	}

	// Пересчитываем время окончания, если изменились услуга или начало
	if req.ServiceID != nil || req.StartTime != nil {
		endTime, err := appt.StartTime.AddMinutes(appt.Service.Duration)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}
		appt.EndTime = endTime
	}

	return nil
}
