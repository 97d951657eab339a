// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/pkg/logger"
)

// RequestIDHeader - заголовок ответа с идентификатором запроса.
const RequestIDHeader = "X-Request-Id"

// NewLoggerMiddleware создает новое промежуточное ПО для логирования HTTP запросов.
// Каждому запросу присваивается идентификатор, возвращаемый в заголовке ответа.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		requestID := logger.GenerateRequestID()
		ctx.Set(RequestIDHeader, requestID)

		log := logger.Log(requestCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
			zap.String(logger.RequestID, requestID),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return err
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
