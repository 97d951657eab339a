package api

import (
	"context"

	"notekeep/internal/auth/domain/entities"
	"notekeep/internal/auth/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, username, password string) (*entities.User, error)

	Login(ctx context.Context, username, password string) (*services.Session, error)

	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)
}
