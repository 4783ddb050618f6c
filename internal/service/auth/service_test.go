package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	userRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/user"
	"github.com/lockenroll/LR-SalonService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUserStore struct {
	users map[string]*domain.User
	err   error
}

func (s *stubUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func storeWithUser(t *testing.T, username, password string, role domain.Role) *stubUserStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &stubUserStore{users: map[string]*domain.User{
		username: {
			ID:           "u-1",
			Username:     username,
			PasswordHash: string(hash),
			Name:         "Martina",
			Role:         role,
		},
	}}
}

func newTestService(store UserStore, fallback FallbackCredentials) *Service {
	return NewService(store, []byte("test-secret"), time.Hour, fallback, nopLogger{})
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(storeWithUser(t, "martina", "geheim123", domain.RoleAdmin), FallbackCredentials{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "martina",
		Password: "geheim123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "martina", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLogin_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := newTestService(storeWithUser(t, "martina", "geheim123", domain.RoleStaff), FallbackCredentials{})

	_, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{
		Username: "martina",
		Password: "falsch",
	})
	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Username: "niemand",
		Password: "egal",
	})

	// Обе ветки дают одну и ту же ошибку
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	svc := newTestService(storeWithUser(t, "martina", "geheim123", domain.RoleStaff), FallbackCredentials{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "martina",
		Password: "geheim123",
	})
	require.NoError(t, err)

	identity, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.UserID)
	assert.Equal(t, "martina", identity.Username)
	assert.Equal(t, domain.RoleStaff, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(&stubUserStore{}, FallbackCredentials{})

	_, err := svc.VerifyToken("kein.echter.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	store := storeWithUser(t, "martina", "geheim123", domain.RoleStaff)
	issuer := newTestService(store, FallbackCredentials{})
	verifier := NewService(store, []byte("anderes-secret"), time.Hour, FallbackCredentials{}, nopLogger{})

	resp, err := issuer.Login(context.Background(), &models.LoginRequest{
		Username: "martina",
		Password: "geheim123",
	})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin_FallbackWhenStoreUnavailable(t *testing.T) {
	store := &stubUserStore{err: errors.New("connection refused")}
	svc := newTestService(store, FallbackCredentials{
		Enabled:  true,
		Username: "admin",
		Password: "notfall-passwort",
	})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "notfall-passwort",
	})
	require.NoError(t, err)

	identity, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin())
}

func TestLogin_FallbackWrongCredentials(t *testing.T) {
	store := &stubUserStore{err: errors.New("connection refused")}
	svc := newTestService(store, FallbackCredentials{
		Enabled:  true,
		Username: "admin",
		Password: "notfall-passwort",
	})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "falsch",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_FallbackDisabled(t *testing.T) {
	store := &stubUserStore{err: errors.New("connection refused")}
	svc := newTestService(store, FallbackCredentials{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "egal",
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_FallbackNotUsedWhenStoreHealthy(t *testing.T) {
	// Хранилище работает: аварийные учетные данные не дают входа
	svc := newTestService(storeWithUser(t, "martina", "geheim123", domain.RoleStaff), FallbackCredentials{
		Enabled:  true,
		Username: "admin",
		Password: "notfall-passwort",
	})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "notfall-passwort",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
