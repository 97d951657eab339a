// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyUserID  = errors.New("user id is required")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
// Идентификатор пользователя всегда передается явно из слоя аутентификации
// и участвует в каждом запросе к хранилищу как обязательный фильтр владельца.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку для пользователя.
func (uc *NoteUseCase) CreateNote(ctx context.Context, userID, title, content string) (*entities.Note, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	note, err := uc.noteRepo.Create(ctx, entities.NewNote(userID, title, content))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// GetNote возвращает заметку пользователя по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListNotes возвращает все заметки пользователя, новые сначала.
func (uc *NoteUseCase) ListNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote обновляет существующую заметку пользователя.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, userID, noteID, title, content string) (*entities.Note, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if content == "" {
		return nil, ErrEmptyContent
	}

	note, err := uc.noteRepo.Update(ctx, noteID, userID, title, content)
	if err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote удаляет заметку пользователя.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, userID, noteID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	if err := uc.noteRepo.Delete(ctx, noteID, userID); err != nil {
		if errors.Is(err, repositories.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
