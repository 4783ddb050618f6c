package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	userRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/user"
	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
	"github.com/lockenroll/LR-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memUserRepo хранит пользователей в памяти
type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, userRepo.ErrUsernameTaken
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return &copied, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *memUserRepo) List(context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return &copied, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) HasAdmin(context.Context) (bool, error) {
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func adminActor() models.Actor {
	return models.Actor{UserID: "admin-id", Role: domain.RoleAdmin}
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "martina",
		Password: "geheim123",
		Name:     "Martina",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "geheim123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("geheim123")))
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMemUserRepo(), nopLogger{})

	tests := []struct {
		name string
		req  models.CreateUserRequest
	}{
		{"empty username", models.CreateUserRequest{Password: "geheim123", Role: "staff"}},
		{"short password", models.CreateUserRequest{Username: "martina", Password: "kurz", Role: "staff"}},
		{"unknown role", models.CreateUserRequest{Username: "martina", Password: "geheim123", Role: "chef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc := NewService(newMemUserRepo(), nopLogger{})

	req := &models.CreateUserRequest{Username: "martina", Password: "geheim123", Role: "staff"}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdate_AccessRules(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "lisa",
		Password: "geheim123",
		Role:     "staff",
	})
	require.NoError(t, err)

	t.Run("staff cannot update others", func(t *testing.T) {
		actor := models.Actor{UserID: "jemand-anderes", Role: domain.RoleStaff}
		_, err := svc.Update(context.Background(), created.ID, actor, &models.UpdateUserRequest{
			Name: ptr.Ptr("Neu"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff cannot change own role", func(t *testing.T) {
		actor := models.Actor{UserID: created.ID, Role: domain.RoleStaff}
		_, err := svc.Update(context.Background(), created.ID, actor, &models.UpdateUserRequest{
			Role: ptr.Ptr("admin"),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff can update own profile", func(t *testing.T) {
		actor := models.Actor{UserID: created.ID, Role: domain.RoleStaff}
		resp, err := svc.Update(context.Background(), created.ID, actor, &models.UpdateUserRequest{
			Name: ptr.Ptr("Lisa M."),
		})
		require.NoError(t, err)
		assert.Equal(t, "Lisa M.", resp.Name)
	})

	t.Run("admin can promote", func(t *testing.T) {
		resp, err := svc.Update(context.Background(), created.ID, adminActor(), &models.UpdateUserRequest{
			Role: ptr.Ptr("admin"),
		})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
	})
}

func TestDelete_SelfDeletionRejected(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Username: "martina",
		Password: "geheim123",
		Role:     "admin",
	})
	require.NoError(t, err)

	actor := models.Actor{UserID: created.ID, Role: domain.RoleAdmin}
	err = svc.Delete(context.Background(), created.ID, actor)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Другой администратор может удалить
	require.NoError(t, svc.Delete(context.Background(), created.ID, adminActor()))
}

func TestEnsureInitialAdmin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.EnsureInitialAdmin(context.Background(), "admin", "start-passwort"))

	hasAdmin, err := repo.HasAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, hasAdmin)

	// Повторный вызов ничего не создает
	require.NoError(t, svc.EnsureInitialAdmin(context.Background(), "admin", "start-passwort"))
	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
