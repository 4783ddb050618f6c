package models

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/lockenroll/LR-SalonService/internal/domain"
)

// Identity аутентифицированный пользователь, извлеченный из токена
type Identity struct {
	UserID   string
	Username string
	Role     domain.Role
}

// IsAdmin проверяет, является ли пользователь администратором
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Claims полезная нагрузка JWT токена
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Request модели

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response модели

// LoginResponse ответ с токеном и данными пользователя
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse данные пользователя в ответах аутентификации
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
