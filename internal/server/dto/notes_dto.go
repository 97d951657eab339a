package dto

import (
	"time"

	"notekeep/internal/notes/domain/entities"
)

// NoteRequest содержит данные для создания или обновления заметки.
type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Note представляет заметку в ответах API.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteFromEntity преобразует доменную заметку в представление API.
func NoteFromEntity(note *entities.Note) *Note {
	return &Note{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NotesFromEntities преобразует список доменных заметок в представление API.
func NotesFromEntities(notes []*entities.Note) []*Note {
	result := make([]*Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, NoteFromEntity(note))
	}
	return result
}
