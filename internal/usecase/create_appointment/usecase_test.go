package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	appointmentRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/appointment"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (s *stubRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *appt
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

func (s *stubRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0, len(s.existing))
	for _, appt := range s.existing {
		if filter.StaffID != nil && appt.Staff.ID != *filter.StaffID {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

type stubConfigStore struct {
	cfg *domain.SalonConfig
	err error
}

func (s *stubConfigStore) Load(context.Context) (*domain.SalonConfig, error) {
	return s.cfg, s.err
}

type stubNotifier struct {
	sent []*domain.Appointment
	err  error
}

func (s *stubNotifier) SendAppointmentConfirmation(appt *domain.Appointment) error {
	s.sent = append(s.sent, appt)
	return s.err
}

// passthroughTxManager выполняет функцию без настоящей транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
			{ID: "karin", Name: "Karin", Active: true},
		},
	}
}

// 2026-03-10 - вторник
var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Customer: domain.Customer{
			Name:  "Anna Schmidt",
			Email: "anna@example.de",
			Phone: "015712345678",
		},
		ServiceID: "herren-schnitt",
		StaffID:   "martina",
		Date:      tuesday,
		StartTime: types.TimeString("10:00"),
	}
}

func newTestUseCase(repo *stubRepo, store *stubConfigStore, notifier *stubNotifier) *UseCase {
	return NewUseCase(repo, store, notifier, passthroughTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)

	// Снимок услуги и мастера зафиксирован
	assert.Equal(t, "Herrenhaarschnitt", resp.Service.Name)
	assert.Equal(t, 28.0, resp.Service.Price)
	assert.Equal(t, "Martina", resp.Staff.Name)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(42), notifier.sent[0].ID)
}

func TestExecute_EndTimeFromServiceDuration(t *testing.T) {
	repo := &stubRepo{}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	req := validRequest()
	req.ServiceID = "faerben" // 90 минут

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:30"), resp.EndTime)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&stubRepo{}, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	req := validRequest()
	req.ServiceID = "unbekannt"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownStaff(t *testing.T) {
	uc := newTestUseCase(&stubRepo{}, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	req := validRequest()
	req.StaffID = "unbekannt"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_SalonClosed(t *testing.T) {
	uc := newTestUseCase(&stubRepo{}, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	req := validRequest()
	req.Date = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				Staff:     domain.StaffSnapshot{ID: "martina", Name: "Martina"},
				Date:      tuesday,
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("10:30"),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	notifier := &stubNotifier{}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Ничего не создано и не отправлено
	assert.Nil(t, repo.created)
	assert.Empty(t, notifier.sent)
}

func TestExecute_OtherStaffBookingDoesNotBlockSlot(t *testing.T) {
	// Занятое у Карин время остается свободным у Мартины
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				Staff:     domain.StaffSnapshot{ID: "karin", Name: "Karin"},
				Date:      tuesday,
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("10:30"),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "martina", resp.Staff.ID)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_UniqueIndexConflictMapsToSlotNotAvailable(t *testing.T) {
	// Гонка: проверка прошла, но вставку отклонил частичный уникальный индекс
	repo := &stubRepo{createErr: appointmentRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_NotificationFailureDoesNotFailAppointment(t *testing.T) {
	repo := &stubRepo{}
	notifier := &stubNotifier{err: errors.New("smtp down")}
	uc := newTestUseCase(repo, &stubConfigStore{cfg: testConfig()}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&stubRepo{}, &stubConfigStore{cfg: testConfig()}, &stubNotifier{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer name", func(r *Request) { r.Customer.Name = "" }},
		{"missing email", func(r *Request) { r.Customer.Email = "" }},
		{"malformed email", func(r *Request) { r.Customer.Email = "keine-mail" }},
		{"missing phone", func(r *Request) { r.Customer.Phone = "" }},
		{"missing service", func(r *Request) { r.ServiceID = "" }},
		{"missing staff", func(r *Request) { r.StaffID = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"malformed start time", func(r *Request) { r.StartTime = types.TimeString("25:00") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
