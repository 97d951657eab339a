package logger

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// NewRequestIDContext прикрепляет идентификатор запроса к контексту.
// Пустой идентификатор заменяется свежесгенерированным.
func NewRequestIDContext(ctx context.Context, id string) context.Context {
	if id == "" {
		id = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID возвращает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// GenerateRequestID выдает новый уникальный идентификатор запроса.
func GenerateRequestID() string {
	return uuid.New().String()
}
