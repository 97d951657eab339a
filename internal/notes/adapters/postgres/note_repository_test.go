package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/notes/adapters/postgres"
	"notekeep/internal/notes/domain/entities"
	"notekeep/internal/notes/ports/repositories"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err, "не должно быть ошибки при создании мока пула")
	t.Cleanup(mockPool.Close)

	return mockPool
}

func noteColumns() []string {
	return []string{"id", "user_id", "title", "content", "created_at", "updated_at"}
}

func TestNoteRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("успешное создание заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		rows := pgxmock.NewRows(noteColumns()).
			AddRow("note-1", "user-1", "title", "content", now, now)

		mockPool.ExpectQuery("INSERT INTO notes").
			WithArgs("user-1", "title", "content").
			WillReturnRows(rows)

		created, err := repo.Create(ctx, &entities.Note{UserID: "user-1", Title: "title", Content: "content"})
		require.NoError(t, err)
		assert.Equal(t, "note-1", created.ID)
		assert.Equal(t, "user-1", created.UserID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestNoteRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("успешное получение заметки владельцем", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		rows := pgxmock.NewRows(noteColumns()).
			AddRow("note-1", "user-1", "title", "content", now, now)

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("note-1", "user-1").
			WillReturnRows(rows)

		note, err := repo.GetByID(ctx, "note-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, "title", note.Title)
	})

	t.Run("синтаксически неверный id равносилен отсутствию заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("not-a-uuid", "user-1").
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})

		_, err := repo.GetByID(ctx, "not-a-uuid", "user-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})

	t.Run("чужая заметка неотличима от несуществующей", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		// Фильтр по владельцу входит в сам запрос: для чужого user_id
		// база просто не возвращает строк.
		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("note-1", "intruder").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, "note-1", "intruder")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})
}

func TestNoteRepositoryListByUserID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("список заметок пользователя, новые сначала", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		rows := pgxmock.NewRows(noteColumns()).
			AddRow("note-2", "user-1", "newer", "b", now, now).
			AddRow("note-1", "user-1", "older", "a", now.Add(-time.Hour), now.Add(-time.Hour))

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("user-1").
			WillReturnRows(rows)

		notes, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, "newer", notes[0].Title)
		assert.Equal(t, "older", notes[1].Title)
	})

	t.Run("пустой список вместо nil", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectQuery("SELECT id, user_id, title, content, created_at, updated_at").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows(noteColumns()))

		notes, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)
	})
}

func TestNoteRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("успешное обновление заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		rows := pgxmock.NewRows(noteColumns()).
			AddRow("note-1", "user-1", "new title", "new content", now.Add(-time.Hour), now)

		mockPool.ExpectQuery("UPDATE notes").
			WithArgs("note-1", "user-1", "new title", "new content").
			WillReturnRows(rows)

		note, err := repo.Update(ctx, "note-1", "user-1", "new title", "new content")
		require.NoError(t, err)
		assert.Equal(t, "new title", note.Title)
		assert.Equal(t, "new content", note.Content)
	})

	t.Run("обновление чужой заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectQuery("UPDATE notes").
			WithArgs("note-1", "intruder", "new title", "new content").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(ctx, "note-1", "intruder", "new title", "new content")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})

	t.Run("обновление по синтаксически неверному id", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectQuery("UPDATE notes").
			WithArgs("not-a-uuid", "user-1", "new title", "new content").
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})

		_, err := repo.Update(ctx, "not-a-uuid", "user-1", "new title", "new content")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})
}

func TestNoteRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное удаление заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs("note-1", "user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := repo.Delete(ctx, "note-1", "user-1")
		require.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("удаление чужой или несуществующей заметки", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs("note-1", "intruder").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(ctx, "note-1", "intruder")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})

	t.Run("удаление по синтаксически неверному id", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := postgres.NewNoteRepository(mockPool)

		mockPool.ExpectExec("DELETE FROM notes").
			WithArgs("not-a-uuid", "user-1").
			WillReturnError(&pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})

		err := repo.Delete(ctx, "not-a-uuid", "user-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, repositories.ErrNoteNotFound)
	})
}
