package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	userRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/user"
	"github.com/lockenroll/LR-SalonService/internal/service/auth/models"
)

// dummyHash используется для выравнивания времени ответа, когда пользователь
// не найден: bcrypt все равно выполняется, чтобы по задержке нельзя было
// отличить неизвестное имя от неверного пароля.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// FallbackCredentials аварийные учетные данные из конфигурации.
// Используются только когда хранилище пользователей недоступно.
type FallbackCredentials struct {
	Enabled  bool
	Username string
	Password string
}

// Service сервис аутентификации: проверка паролей и выпуск JWT токенов
type Service struct {
	userStore UserStore
	secret    []byte
	tokenTTL  time.Duration
	fallback  FallbackCredentials
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userStore UserStore,
	secret []byte,
	tokenTTL time.Duration,
	fallback FallbackCredentials,
	logger Logger,
) *Service {
	return &Service{
		userStore: userStore,
		secret:    secret,
		tokenTTL:  tokenTTL,
		fallback:  fallback,
		logger:    logger,
	}
}

// Login проверяет учетные данные и выпускает токен.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: attempt for username=%q", req.Username)

	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			// Выравниваем время ответа с веткой неверного пароля
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			s.logger.Warn("Login: failed attempt for username=%q", req.Username)
			return nil, ErrInvalidCredentials
		}

		// Хранилище недоступно: пробуем аварийные учетные данные
		s.logger.Error("Login: user store unavailable: %v", err)
		return s.fallbackLogin(req)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: failed attempt for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Username, user.Role)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for username=%q role=%s", user.Username, user.Role)
	return &models.LoginResponse{
		Token: token,
		User: models.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     string(user.Role),
		},
	}, nil
}

// VerifyToken проверяет подпись и срок действия токена
func (s *Service) VerifyToken(tokenString string) (*models.Identity, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return &models.Identity{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     domain.Role(claims.Role),
	}, nil
}

// Вспомогательные методы

// fallbackLogin проверяет аварийные учетные данные из конфигурации.
// Сравнение константно по времени.
func (s *Service) fallbackLogin(req *models.LoginRequest) (*models.LoginResponse, error) {
	if !s.fallback.Enabled {
		return nil, fmt.Errorf("%w: fallbackLogin - user store unavailable", ErrInternal)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.fallback.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.fallback.Password)) == 1
	if !userOK || !passOK {
		s.logger.Warn("Login: failed fallback attempt for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken("fallback-admin", s.fallback.Username, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("Login: failed to issue fallback token: %v", err)
		return nil, fmt.Errorf("%w: fallbackLogin - failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Warn("Login: fallback credentials used for username=%q", req.Username)
	return &models.LoginResponse{
		Token: token,
		User: models.UserResponse{
			ID:       "fallback-admin",
			Username: s.fallback.Username,
			Name:     "Administrator",
			Role:     string(domain.RoleAdmin),
		},
	}, nil
}

// issueToken выпускает подписанный HS256 токен
func (s *Service) issueToken(userID, username string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
