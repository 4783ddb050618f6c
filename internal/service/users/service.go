package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lockenroll/LR-SalonService/internal/domain"
	userRepo "github.com/lockenroll/LR-SalonService/internal/infra/storage/user"
	"github.com/lockenroll/LR-SalonService/internal/service/users/models"
)

// Service сервис для работы с учетными записями персонала
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает нового пользователя.
// Пароль хешируется bcrypt, открытый пароль нигде не сохраняется.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user username=%q role=%q", req.Username, req.Role)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Role:         domain.Role(req.Role),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Create: username %q already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created user id=%s username=%q", created.ID, created.Username)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей, отсортированных по имени входа
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// Update частично обновляет пользователя.
// Администратор может менять любого, остальные - только себя и без смены роли.
func (s *Service) Update(ctx context.Context, id string, actor models.Actor, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%s by actor=%s", id, actor.UserID)

	if !actor.IsAdmin() {
		if actor.UserID != id {
			s.logger.Warn("Update: actor=%s is not allowed to update user id=%s", actor.UserID, id)
			return nil, ErrAccessDenied
		}
		if req.Role != nil {
			s.logger.Warn("Update: actor=%s is not allowed to change own role", actor.UserID)
			return nil, ErrAccessDenied
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Password != nil {
		if len(*req.Password) < domain.MinPasswordLength {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - failed to hash password: %v", ErrInternal, err)
		}
		user.PasswordHash = string(hash)
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !validRole(role) {
			return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, *req.Role)
		}
		user.Role = role
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%s", id)
	return models.FromDomainUser(updated), nil
}

// Delete удаляет пользователя.
// Администратор не может удалить сам себя.
func (s *Service) Delete(ctx context.Context, id string, actor models.Actor) error {
	s.logger.Info("Delete: deleting user id=%s by actor=%s", id, actor.UserID)

	if actor.UserID == id {
		s.logger.Warn("Delete: actor=%s attempted to delete own account", actor.UserID)
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%s not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%s", id)
	return nil
}

// EnsureInitialAdmin создает администратора при первом запуске,
// если в базе еще нет ни одного пользователя с ролью admin.
func (s *Service) EnsureInitialAdmin(ctx context.Context, username, password string) error {
	hasAdmin, err := s.userRepo.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureInitialAdmin - repository error: %v", ErrInternal, err)
	}
	if hasAdmin {
		return nil
	}

	s.logger.Info("EnsureInitialAdmin: no admin found, creating %q", username)
	_, err = s.Create(ctx, &models.CreateUserRequest{
		Username: username,
		Password: password,
		Name:     "Administrator",
		Role:     string(domain.RoleAdmin),
	})
	if err != nil && !errors.Is(err, ErrUsernameTaken) {
		return err
	}
	return nil
}

// Вспомогательные методы

func validateCreateRequest(req *models.CreateUserRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if !validRole(domain.Role(req.Role)) {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidInput, req.Role)
	}
	return nil
}

func validRole(role domain.Role) bool {
	for _, valid := range domain.ValidRoles {
		if role == valid {
			return true
		}
	}
	return false
}
