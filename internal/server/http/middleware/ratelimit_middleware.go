// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/ratelimit"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	ErrorTooManyRequests = "too many requests"
	ErrorLimiterFailed   = "rate limiter unavailable, request allowed"
)

// NewRateLimitMiddleware создает промежуточное ПО, ограничивающее частоту
// запросов по IP клиента. Отказ самого ограничителя не блокирует запрос.
func NewRateLimitMiddleware(limiter ratelimit.Limiter) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "ratelimit"))

		allowed, err := limiter.Allow(requestCtx, ctx.IP())
		if err != nil {
			log.Error(requestCtx, ErrorLimiterFailed, zap.Error(err))
			return ctx.Next()
		}

		if !allowed {
			log.Debug(requestCtx, ErrorTooManyRequests, zap.String("ip", ctx.IP()))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": ErrorTooManyRequests,
			})
		}

		return ctx.Next()
	}
}
