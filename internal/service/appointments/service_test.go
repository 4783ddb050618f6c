package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	appointmentRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/appointment"
	"github.com/lockenroll/LR-SalonService/internal/service/appointments/models"
	"github.com/lockenroll/LR-SalonService/pkg/ptr"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	appt      *domain.Appointment
	appts     []*domain.Appointment
	getErr    error
	updateErr error
	deleteErr error
	updated   *domain.Appointment
}

func (s *stubRepo) GetByID(context.Context, int64) (*domain.Appointment, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.appt
	return &copied, nil
}

func (s *stubRepo) ListWithFilter(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appts, nil
}

func (s *stubRepo) Update(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updated = appt
	return appt, nil
}

func (s *stubRepo) Delete(context.Context, int64) error {
	return s.deleteErr
}

type stubConfigStore struct {
	cfg *domain.SalonConfig
	err error
}

func (s *stubConfigStore) Load(context.Context) (*domain.SalonConfig, error) {
	return s.cfg, s.err
}

func testConfig() *domain.SalonConfig {
	return &domain.SalonConfig{
		BusinessHours: map[int]domain.DayHours{
			2: {IsOpen: true, Start: types.TimeString("09:00"), End: types.TimeString("18:00")},
		},
		AppointmentDuration: 30,
		Services: []domain.Service{
			{ID: "herren-schnitt", Name: "Herrenhaarschnitt", Price: 28, Duration: 30, Active: true},
			{ID: "faerben", Name: "Färben & Pflege", Price: 65, Duration: 90, Active: true},
		},
		Staff: []domain.Staff{
			{ID: "martina", Name: "Martina", Active: true},
			{ID: "lisa", Name: "Lisa", Active: true},
		},
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID: 7,
		Customer: domain.Customer{
			Name:  "Anna Schmidt",
			Email: "anna@example.de",
			Phone: "015712345678",
		},
		Service: domain.ServiceSnapshot{
			ID: "herren-schnitt", Name: "Herrenhaarschnitt", Price: 28, Duration: 30,
		},
		Staff:     domain.StaffSnapshot{ID: "martina", Name: "Martina"},
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("10:30"),
		Status:    domain.StatusConfirmed,
	}
}

func newTestService(repo *stubRepo) *Service {
	return NewService(repo, &stubConfigStore{cfg: testConfig()}, nopLogger{})
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&stubRepo{getErr: appointmentRepo.ErrAppointmentNotFound})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := newTestService(&stubRepo{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("unbekannt"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_StartTimeRecomputesEndTime(t *testing.T) {
	repo := &stubRepo{appt: testAppointment()}
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr("14:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "14:30", resp.EndTime)
}

func TestUpdate_ServiceChangeRefreshesSnapshotAndEndTime(t *testing.T) {
	repo := &stubRepo{appt: testAppointment()}
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		ServiceID: ptr.Ptr("faerben"),
	})
	require.NoError(t, err)

	assert.Equal(t, "faerben", resp.Service.ID)
	assert.Equal(t, 65.0, resp.Service.Price)
	assert.Equal(t, 90, resp.Service.Duration)
	// Время окончания пересчитано от прежнего начала
	assert.Equal(t, "11:30", resp.EndTime)
}

func TestUpdate_StaffChangeRefreshesSnapshot(t *testing.T) {
	repo := &stubRepo{appt: testAppointment()}
	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		StaffID: ptr.Ptr("lisa"),
	})
	require.NoError(t, err)

	assert.Equal(t, "lisa", resp.Staff.ID)
	assert.Equal(t, "Lisa", resp.Staff.Name)
	// Услуга и время не тронуты
	assert.Equal(t, "herren-schnitt", resp.Service.ID)
	assert.Equal(t, "10:30", resp.EndTime)
}

func TestUpdate_UnknownServiceOrStaff(t *testing.T) {
	svc := newTestService(&stubRepo{appt: testAppointment()})

	_, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		ServiceID: ptr.Ptr("unbekannt"),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		StaffID: ptr.Ptr("unbekannt"),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestUpdate_StatusTransitions(t *testing.T) {
	t.Run("confirmed to completed", func(t *testing.T) {
		svc := newTestService(&stubRepo{appt: testAppointment()})

		resp, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
			Status: ptr.Ptr("completed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("terminal status is frozen", func(t *testing.T) {
		appt := testAppointment()
		appt.Status = domain.StatusCancelled
		svc := newTestService(&stubRepo{appt: appt})

		_, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
			Status: ptr.Ptr("confirmed"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := newTestService(&stubRepo{appt: testAppointment()})

		_, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
			Status: ptr.Ptr("vielleicht"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestUpdate_SlotConflict(t *testing.T) {
	repo := &stubRepo{appt: testAppointment(), updateErr: appointmentRepo.ErrSlotTaken}
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr("11:00"),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdate_NotesTooLong(t *testing.T) {
	svc := newTestService(&stubRepo{appt: testAppointment()})

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Update(context.Background(), 7, &models.UpdateAppointmentRequest{
		Notes: ptr.Ptr(string(long)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&stubRepo{deleteErr: appointmentRepo.ErrAppointmentNotFound})

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDelete_Success(t *testing.T) {
	svc := newTestService(&stubRepo{})

	err := svc.Delete(context.Background(), 7)
	assert.NoError(t, err)
}
