// Package http содержит компоненты для HTTP сервера.
package http

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"notekeep/internal/auth/ports/api"
	svc "notekeep/internal/auth/ports/services"
	notesapp "notekeep/internal/notes/app"
	"notekeep/internal/ratelimit"
	"notekeep/internal/server/http/auth"
	"notekeep/internal/server/http/middleware"
	"notekeep/internal/server/http/notes"
)

// HealthChecker проверяет доступность хранилища для маршрута /health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	noteUseCase *notesapp.NoteUseCase,
	tokenSvc svc.TokenService,
	limiter ratelimit.Limiter,
	health HealthChecker,
) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)

	// Middleware для всех запросов. Ограничитель частоты стоит первым:
	// превышение лимита не должно достигать логики сервисов.
	app.Use(middleware.NewRateLimitMiddleware(limiter))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		if err := health.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	apiGroup := app.Group("/api")

	// Auth routes (публичные).
	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)

	// Защищенный маршрут профиля.
	authRoutes.Get("/profile", authHandler.GetProfile, middleware.NewAuthMiddleware(tokenSvc))

	// Защищенные маршруты заметок.
	notesRoutes := apiGroup.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	notesRoutes.Get("/", notesHandler.List)
	notesRoutes.Get("/:id", notesHandler.Get)
	notesRoutes.Post("/", notesHandler.Create)
	notesRoutes.Put("/:id", notesHandler.Update)
	notesRoutes.Delete("/:id", notesHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
