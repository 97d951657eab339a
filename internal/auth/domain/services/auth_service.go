package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	// ErrInvalidCredentials возвращается и для неизвестного имени пользователя,
	// и для неверного пароля: ответы не должны различаться.
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUsernameAlreadyExists = errors.New("user with this username already exists")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)

// Session представляет выданные при входе учетные данные.
type Session struct {
	UserID    string
	Username  string
	Token     string
	ExpiresAt time.Time
}
