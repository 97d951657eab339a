// Package auth содержит HTTP обработчики для операций аутентификации.
package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/auth/domain/entities"
	"notekeep/internal/auth/domain/services"
	"notekeep/internal/auth/ports/api"
	"notekeep/internal/server/dto"
	"notekeep/internal/server/http/middleware"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister   = "auth handler: register"
	LogHandlerLogin      = "auth handler: login"
	LogHandlerGetProfile = "auth handler: get profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorInternalServer       = "internal server error"
	ErrorFailedToServeRequest = "failed to serve request"

	MsgUserRegistered = "user registered successfully"
)

// Handler содержит HTTP обработчики для авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	if req.Username == "" || req.Password == "" {
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "username and password are required",
		})
	}

	if _, err := h.authUseCase.Register(requestCtx, req.Username, req.Password); err != nil {
		if isValidationError(err) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": unwrapMessage(err),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}

	return ctx.Status(http.StatusCreated).JSON(fiber.Map{
		"message": MsgUserRegistered,
	})
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		})
	}

	session, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": services.ErrInvalidCredentials.Error(),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.LoginResponse{
		Token: session.Token,
		User: dto.UserView{
			ID:       session.UserID,
			Username: session.Username,
		},
	})
}

// GetProfile обрабатывает запрос на получение профиля пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID, ok := ctx.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	user, err := h.authUseCase.GetUserProfile(requestCtx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return ctx.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": entities.ErrUserNotFound.Error(),
			})
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": ErrorInternalServer,
		})
	}

	return ctx.Status(http.StatusOK).JSON(dto.UserProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// isValidationError сообщает, вызвана ли ошибка данными запроса.
func isValidationError(err error) bool {
	return errors.Is(err, entities.ErrEmptyUsername) ||
		errors.Is(err, entities.ErrUsernameTooShort) ||
		errors.Is(err, entities.ErrPasswordTooShort) ||
		errors.Is(err, services.ErrInvalidPassword) ||
		errors.Is(err, services.ErrUsernameAlreadyExists)
}

// unwrapMessage возвращает текст базовой доменной ошибки без технических префиксов.
func unwrapMessage(err error) string {
	for _, sentinel := range []error{
		entities.ErrEmptyUsername,
		entities.ErrUsernameTooShort,
		entities.ErrPasswordTooShort,
		services.ErrInvalidPassword,
		services.ErrUsernameAlreadyExists,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
