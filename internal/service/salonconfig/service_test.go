package salonconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	configRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/salonconfig"
	"github.com/lockenroll/LR-SalonService/internal/service/salonconfig/models"
	"github.com/lockenroll/LR-SalonService/pkg/ptr"
	"github.com/lockenroll/LR-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memConfigStore хранит конфигурацию в памяти
type memConfigStore struct {
	cfg *domain.SalonConfig
}

func (s *memConfigStore) Load(context.Context) (*domain.SalonConfig, error) {
	if s.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	copied := *s.cfg
	return &copied, nil
}

func (s *memConfigStore) Save(_ context.Context, cfg *domain.SalonConfig) error {
	copied := *cfg
	s.cfg = &copied
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func seededStore() *memConfigStore {
	return &memConfigStore{cfg: defaultConfig()}
}

func newTestService(store *memConfigStore) *Service {
	return NewService(store, passthroughTxManager{}, nopLogger{})
}

func TestGetConfig_NotSeeded(t *testing.T) {
	svc := newTestService(&memConfigStore{})

	_, err := svc.GetConfig(context.Background())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestEnsureDefault_SeedsOnce(t *testing.T) {
	store := &memConfigStore{}
	svc := newTestService(store)

	require.NoError(t, svc.EnsureDefault(context.Background()))
	require.NotNil(t, store.cfg)

	// Повторный вызов не перетирает данные
	store.cfg.AppointmentDuration = 45
	require.NoError(t, svc.EnsureDefault(context.Background()))
	assert.Equal(t, 45, store.cfg.AppointmentDuration)
}

func TestUpdateConfig_Validation(t *testing.T) {
	svc := newTestService(seededStore())

	tests := []struct {
		name   string
		mutate func(*models.UpdateConfigRequest)
	}{
		{"zero appointment duration", func(r *models.UpdateConfigRequest) { r.AppointmentDuration = 0 }},
		{"negative price", func(r *models.UpdateConfigRequest) { r.Services[0].Price = -1 }},
		{"zero service duration", func(r *models.UpdateConfigRequest) { r.Services[0].Duration = 0 }},
		{"duplicate service id", func(r *models.UpdateConfigRequest) { r.Services[1].ID = r.Services[0].ID }},
		{"open day without times", func(r *models.UpdateConfigRequest) {
			r.BusinessHours[2] = domain.DayHours{IsOpen: true}
		}},
		{"closes before opening", func(r *models.UpdateConfigRequest) {
			r.BusinessHours[2] = domain.DayHours{
				IsOpen: true,
				Start:  types.TimeString("18:00"),
				End:    types.TimeString("09:00"),
			}
		}},
		{"weekday out of range", func(r *models.UpdateConfigRequest) {
			r.BusinessHours[7] = domain.DayHours{IsOpen: false}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			req := &models.UpdateConfigRequest{
				BusinessHours:       cfg.BusinessHours,
				AppointmentDuration: cfg.AppointmentDuration,
				Services:            cfg.Services,
				Staff:               cfg.Staff,
			}
			tt.mutate(req)

			_, err := svc.UpdateConfig(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestUpdateConfig_ReplacesAtomically(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	cfg := defaultConfig()
	cfg.AppointmentDuration = 15
	resp, err := svc.UpdateConfig(context.Background(), &models.UpdateConfigRequest{
		BusinessHours:       cfg.BusinessHours,
		AppointmentDuration: cfg.AppointmentDuration,
		Services:            cfg.Services,
		Staff:               cfg.Staff,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.AppointmentDuration)
	assert.Equal(t, 15, store.cfg.AppointmentDuration)
}

func TestAddService_GeneratesIDAndRejectsDuplicates(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	added, err := svc.AddService(context.Background(), &models.ServiceRequest{
		Name:     ptr.Ptr("Föhnen & Styling"),
		Price:    ptr.Ptr(25.0),
		Duration: ptr.Ptr(30),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.True(t, added.Active)

	_, err = svc.AddService(context.Background(), &models.ServiceRequest{
		ID:       ptr.Ptr(added.ID),
		Name:     ptr.Ptr("Doppelt"),
		Price:    ptr.Ptr(10.0),
		Duration: ptr.Ptr(15),
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateService_PartialPatch(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	updated, err := svc.UpdateService(context.Background(), "herren-schnitt", &models.ServiceRequest{
		Price: ptr.Ptr(32.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 32.0, updated.Price)
	// Остальные поля не тронуты
	assert.Equal(t, "Herrenhaarschnitt", updated.Name)
	assert.Equal(t, 30, updated.Duration)
}

func TestUpdateService_NotFound(t *testing.T) {
	svc := newTestService(seededStore())

	_, err := svc.UpdateService(context.Background(), "unbekannt", &models.ServiceRequest{
		Price: ptr.Ptr(10.0),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteService(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	require.NoError(t, svc.DeleteService(context.Background(), "faerben"))
	_, ok := store.cfg.ServiceByID("faerben")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteService(context.Background(), "faerben"), ErrServiceNotFound)
}

func TestStaffLifecycle(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	added, err := svc.AddStaff(context.Background(), &models.StaffRequest{
		Name:        ptr.Ptr("Lisa"),
		Position:    ptr.Ptr("Friseurin"),
		WorkingDays: []int{2, 3, 4},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	updated, err := svc.UpdateStaff(context.Background(), added.ID, &models.StaffRequest{
		WorkingDays: []int{5, 6},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, updated.WorkingDays)
	assert.Equal(t, "Lisa", updated.Name)

	require.NoError(t, svc.DeleteStaff(context.Background(), added.ID))
	assert.ErrorIs(t, svc.DeleteStaff(context.Background(), added.ID), ErrStaffNotFound)
}

func TestAddStaff_InvalidWorkingDay(t *testing.T) {
	svc := newTestService(seededStore())

	_, err := svc.AddStaff(context.Background(), &models.StaffRequest{
		Name:        ptr.Ptr("Lisa"),
		WorkingDays: []int{7},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateBusinessHours(t *testing.T) {
	store := seededStore()
	svc := newTestService(store)

	hours := map[int]domain.DayHours{
		0: {IsOpen: false},
		1: {IsOpen: true, Start: types.TimeString("10:00"), End: types.TimeString("16:00")},
	}

	resp, err := svc.UpdateBusinessHours(context.Background(), hours)
	require.NoError(t, err)
	assert.True(t, resp.BusinessHours[1].IsOpen)
	// Каталоги не тронуты
	assert.NotEmpty(t, store.cfg.Services)
}
