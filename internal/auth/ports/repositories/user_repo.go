package repositories

import (
	"context"

	"notekeep/internal/auth/domain/entities"
)

// UserRepository определяет интерфейс для операций сохранения данных пользователем.
// Методы поиска возвращают пользователя вместе с хэшем пароля;
// скрытие хэша - обязанность вызывающего слоя.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
