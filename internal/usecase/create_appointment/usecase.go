package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	appointmentRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/appointment"
	configRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	"github.com/lockenroll/LR-SalonService/pkg/ptr"
)

// UseCase use case для создания записи клиента на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	configStore     ConfigStore
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configStore ConfigStore,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configStore:     configStore,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: date=%s, time=%s, service=%s, staff=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceID, req.StaffID)

	// 2. Загружаем конфигурацию салона
	cfg, err := uc.configStore.Load(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			uc.logger.Warn("CreateAppointment: salon config missing")
			return nil, fmt.Errorf("%w: salon is not configured", ErrSalonClosed)
		}
		uc.logger.Error("CreateAppointment: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}

	// 3. Разрешаем услугу и мастера в снимки.
	// Снимки фиксируются на момент записи: последующие изменения каталога
	// не затрагивают уже созданные записи.
	service, ok := cfg.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateAppointment: unknown service %q", req.ServiceID)
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, req.ServiceID)
	}

	staff, ok := cfg.StaffByID(req.StaffID)
	if !ok {
		uc.logger.Warn("CreateAppointment: unknown staff %q", req.StaffID)
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, req.StaffID)
	}

	// 4. Вычисляем время окончания по длительности услуги.
	// Переход за полночь не обрезается: "23:45" + 30 мин даст "24:15".
	endTime, err := req.StartTime.AddMinutes(service.Duration)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to compute end time: %v", err)
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	appt := &domain.Appointment{
		Customer: req.Customer,
		Service: domain.ServiceSnapshot{
			ID:       service.ID,
			Name:     service.Name,
			Price:    service.Price,
			Duration: service.Duration,
		},
		Staff: domain.StaffSnapshot{
			ID:   staff.ID,
			Name: staff.Name,
		},
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   endTime,
		Status:    domain.StatusConfirmed,
		Notes:     req.Notes,
	}

	// 5. Проверка доступности слота и вставка выполняются в одной
	// сериализуемой транзакции: повторная проверка внутри транзакции
	// с блокировкой строк закрывает гонку между проверкой и записью.
	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		hours, ok := cfg.HoursForDate(req.Date)
		if !ok || !hours.IsOpen {
			return fmt.Errorf("%w: %s", ErrSalonClosed, req.Date.Format(domain.DateFormat))
		}

		grid, err := generateTimeSlots(hours, cfg.SlotDuration())
		if err != nil {
			return fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
		}

		// Блокируем записи выбранного мастера на эту дату до конца
		// транзакции (FOR UPDATE). Доступность проверяется для конкретного
		// мастера: чужие записи на это же время не мешают.
		booked, err := uc.appointmentRepo.ListWithFilter(txCtx, domain.AppointmentsFilter{
			Date:    ptr.Ptr(req.Date),
			Status:  ptr.Ptr(domain.StatusConfirmed),
			StaffID: ptr.Ptr(req.StaffID),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		free, err := availableSlots(grid, cfg.SlotDuration(), booked)
		if err != nil {
			return fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
		}

		if !containsSlot(free, req.StartTime) {
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.StartTime)
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s", ErrSlotNotAvailable, req.StartTime)
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment %d for %s at %s",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime)

	// 6. Отправляем подтверждение после фиксации транзакции.
	// Сбой отправки не отменяет созданную запись, только логируется.
	if err := uc.notifier.SendAppointmentConfirmation(created); err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation for %d: %v", created.ID, err)
	}

	return fromDomain(created), nil
}
