// Package notes содержит HTTP обработчики для работы с заметками.
package notes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/notes/app"
	"notekeep/internal/server/dto"
	"notekeep/internal/server/http/middleware"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerList   = "notes handler: list"
	LogHandlerGet    = "notes handler: get"
	LogHandlerCreate = "notes handler: create"
	LogHandlerUpdate = "notes handler: update"
	LogHandlerDelete = "notes handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorInternalServer       = "internal server error"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgNoteDeleted = "note deleted successfully"
)

// Handler содержит HTTP обработчики для заметок.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// userID извлекает ID аутентифицированного пользователя из locals запроса.
func userID(ctx fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals(middleware.UserIDKey).(string)
	return id, ok && id != ""
}

// List возвращает все заметки пользователя, новые сначала.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	uid, ok := userID(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, uid)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": ErrorInternalServer})
	}

	return ctx.Status(http.StatusOK).JSON(dto.NotesFromEntities(notes))
}

// Get возвращает заметку пользователя по ID.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	uid, ok := userID(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	note, err := h.noteUseCase.GetNote(requestCtx, uid, ctx.Params("id"))
	if err != nil {
		return h.mapError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NoteFromEntity(note))
}

// Create создает новую заметку пользователя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	uid, ok := userID(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrorInvalidRequest})
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, uid, req.Title, req.Content)
	if err != nil {
		return h.mapError(ctx, err)
	}

	return ctx.Status(http.StatusCreated).JSON(dto.NoteFromEntity(note))
}

// Update обновляет существующую заметку пользователя.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	uid, ok := userID(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req dto.NoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ErrorInvalidRequest})
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, uid, ctx.Params("id"), req.Title, req.Content)
	if err != nil {
		return h.mapError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(dto.NoteFromEntity(note))
}

// Delete удаляет заметку пользователя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	uid, ok := userID(ctx)
	if !ok {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, uid, ctx.Params("id")); err != nil {
		return h.mapError(ctx, err)
	}

	return ctx.Status(http.StatusOK).JSON(fiber.Map{"message": MsgNoteDeleted})
}

// mapError отображает ошибки бизнес-логики в HTTP статусы.
func (h *Handler) mapError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()

	switch {
	case errors.Is(err, app.ErrNoteNotFound):
		return ctx.Status(http.StatusNotFound).JSON(fiber.Map{"error": app.ErrNoteNotFound.Error()})
	case errors.Is(err, app.ErrEmptyTitle):
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": app.ErrEmptyTitle.Error()})
	case errors.Is(err, app.ErrEmptyContent):
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"error": app.ErrEmptyContent.Error()})
	case errors.Is(err, app.ErrEmptyUserID):
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	default:
		logger.Log(requestCtx).Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": ErrorInternalServer})
	}
}
