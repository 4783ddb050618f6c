package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	configRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAppointmentRepo struct {
	appts      []*domain.Appointment
	err        error
	lastFilter domain.AppointmentsFilter
}

func (s *stubAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.lastFilter = filter
	return s.appts, s.err
}

type stubConfigStore struct {
	cfg *domain.SalonConfig
	err error
}

func (s *stubConfigStore) Load(context.Context) (*domain.SalonConfig, error) {
	return s.cfg, s.err
}

// Вторник 09:00-18:00, слоты по 30 минут
func testConfig() *domain.SalonConfig {
	return &domain.SalonConfig{
		BusinessHours: map[int]domain.DayHours{
			0: {IsOpen: false},
			2: {IsOpen: true, Start: types.TimeString("09:00"), End: types.TimeString("18:00")},
		},
		AppointmentDuration: 30,
	}
}

// 2026-03-10 - вторник
var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func confirmedAppointment(start, end string) *domain.Appointment {
	return &domain.Appointment{
		Date:      tuesday,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusConfirmed,
	}
}

func TestExecute_FullDayOpen(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)

	// 09:00..17:30 с шагом 30 минут
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[17])

	// Фильтр запрашивает только подтвержденные записи на дату
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Date)
	assert.True(t, repo.lastFilter.Date.Equal(tuesday))
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&stubAppointmentRepo{}, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnconfiguredDayReturnsEmpty(t *testing.T) {
	// Понедельник вообще не описан в конфигурации
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&stubAppointmentRepo{}, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingConfigReturnsEmpty(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubConfigStore{err: configRepo.ErrConfigNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	repo := &stubAppointmentRepo{
		appts: []*domain.Appointment{confirmedAppointment("10:00", "10:30")},
	}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	// Касание границ пересечением не считается
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
	assert.Len(t, resp.Slots, 17)
}

func TestExecute_LongAppointmentBlocksEverySlotItCovers(t *testing.T) {
	// Услуга на 90 минут: 11:00-12:30
	repo := &stubAppointmentRepo{
		appts: []*domain.Appointment{confirmedAppointment("11:00", "12:30")},
	}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)

	for _, blocked := range []string{"11:00", "11:30", "12:00"} {
		assert.NotContains(t, resp.Slots, types.TimeString(blocked))
	}
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("12:30"))
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	cancelled := confirmedAppointment("10:00", "10:30")
	cancelled.Status = domain.StatusCancelled
	repo := &stubAppointmentRepo{appts: []*domain.Appointment{cancelled}}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
}

func TestExecute_StaffFilterPassedThrough(t *testing.T) {
	repo := &stubAppointmentRepo{}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	staffID := "martina"
	_, err := uc.Execute(context.Background(), &Request{Date: tuesday, StaffID: &staffID})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StaffID)
	assert.Equal(t, "martina", *repo.lastFilter.StaffID)
}

func TestExecute_ReadOnlyAndRepeatable(t *testing.T) {
	repo := &stubAppointmentRepo{
		appts: []*domain.Appointment{confirmedAppointment("14:00", "14:30")},
	}
	uc := NewUseCase(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubConfigStore{cfg: testConfig()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
