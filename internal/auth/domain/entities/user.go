package entities

import (
	"errors"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrUsernameTooShort = errors.New("username must contain at least 3 characters")
	ErrPasswordTooShort = errors.New("password must contain at least 6 characters")
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrUserNotFound     = errors.New("user not found")
)

// MinUsernameLength - минимальная длина имени пользователя после обрезки пробелов.
const MinUsernameLength = 3

// User представляет основную сущность домена пользователя.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
