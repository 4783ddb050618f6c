package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	configRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	"github.com/lockenroll/LR-SalonService/pkg/ptr"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	configStore     ConfigStore
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configStore ConfigStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configStore:     configStore,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, staff=%v",
		req.Date.Format(domain.DateFormat), staffLabel(req.StaffID))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Загружаем конфигурацию салона.
	// Если конфигурация еще не сохранена, свободных слотов нет.
	cfg, err := uc.configStore.Load(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("GetAvailableSlots: salon config missing, returning no slots")
			return emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}

	// 3. Определяем часы работы на день недели.
	// Закрытый день - это пустой список слотов, а не ошибка.
	hours, ok := cfg.HoursForDate(req.Date)
	if !ok || !hours.IsOpen {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return emptyResponse(req), nil
	}

	// 4. Генерируем сетку слотов
	slots, err := generateTimeSlots(hours, cfg.SlotDuration())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем подтвержденные записи на эту дату.
	// Без фильтра по мастеру занятость считается по всем мастерам сразу:
	// любая запись блокирует слот целиком, даже если другие мастера свободны.
	// Поведение унаследовано от исходной системы для бронирований
	// "без предпочтения" и сознательно не меняется здесь.
	filter := domain.AppointmentsFilter{
		Date:    ptr.Ptr(req.Date),
		Status:  ptr.Ptr(domain.StatusConfirmed),
		StaffID: req.StaffID,
	}

	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	available, err := filterBookedSlots(slots, cfg.SlotDuration(), appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:    req.Date,
		StaffID: req.StaffID,
		Slots:   available,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:    req.Date,
		StaffID: req.StaffID,
		Slots:   []types.TimeString{},
	}
}

func staffLabel(staffID *string) string {
	if staffID == nil {
		return "<any>"
	}
	return *staffID
}
