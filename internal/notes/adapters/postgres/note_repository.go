// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
	"notekeep/pkg/logger"
)

// Код ошибки PostgreSQL для значения, не разбираемого в целевой тип.
// Синтаксически неверный id (не-UUID) не может указывать на существующую
// заметку, поэтому такие ошибки равносильны отсутствию заметки.
const invalidTextRepresentationCode = "22P02"

func isInvalidNoteID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentationCode
}

type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("userID", note.UserID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (user_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, user_id, title, content, created_at, updated_at`,
		note.UserID, note.Title, note.Content,
	).Scan(&created.ID, &created.UserID, &created.Title, &created.Content, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// GetByID получает заметку по ID и ID владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", noteID), zap.String("userID", userID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
         FROM notes
         WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	).Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidNoteID(err) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return nil, repositories.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByUserID получает все заметки пользователя, новые сначала.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByUserID"))
	log.Debug(ctx, "listing notes", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
         FROM notes
         WHERE user_id = $1
         ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update атомарно обновляет заметку, совпадающую по ID и владельцу.
func (r *NoteRepository) Update(ctx context.Context, noteID, userID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", noteID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = $3, content = $4, updated_at = now()
         WHERE id = $1 AND user_id = $2
         RETURNING id, user_id, title, content, created_at, updated_at`,
		noteID, userID, title, content,
	).Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidNoteID(err) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return nil, repositories.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete атомарно удаляет заметку, совпадающую по ID и владельцу.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		if isInvalidNoteID(err) {
			log.Debug(ctx, "note not found or not owned by user", zap.String("noteID", noteID))
			return repositories.ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return repositories.ErrNoteNotFound
	}

	return nil
}
