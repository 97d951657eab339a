// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"
	"errors"

	"notekeep/internal/notes/domain/entities"
)

// ErrNoteNotFound возвращается, когда заметка не существует или принадлежит
// другому пользователю: эти случаи не различаются.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Каждый метод чтения и изменения фильтрует по владельцу на уровне запроса.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)
	Update(ctx context.Context, noteID, userID, title, content string) (*entities.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
}
