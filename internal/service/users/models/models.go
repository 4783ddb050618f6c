package models

import (
	"time"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// Actor идентичность пользователя, выполняющего операцию
type Actor struct {
	UserID string
	Role   domain.Role
}

// IsAdmin проверяет, является ли пользователь администратором
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// Request модели

// CreateUserRequest запрос на создание пользователя
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UpdateUserRequest запрос на частичное обновление пользователя.
// nil-поля не изменяются.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// Response модели

// UserResponse ответ с данными пользователя (без хеша пароля)
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO.
// Хеш пароля наружу не отдается.
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	list := make([]UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, *FromDomainUser(u))
	}
	return &UserListResponse{Users: list}
}
