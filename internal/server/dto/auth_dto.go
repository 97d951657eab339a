// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import (
	"time"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView содержит публичное представление пользователя без хэша пароля.
type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse содержит токен и публичные данные пользователя.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// UserProfileResponse содержит данные профиля пользователя.
type UserProfileResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
