// Package ratelimit содержит ограничитель частоты запросов.
package ratelimit

import "context"

// Limiter определяет интерфейс счетчика запросов с фиксированным окном.
// Реализация передается в конвейер запросов явно, без глобального состояния.
type Limiter interface {
	// Allow регистрирует запрос для ключа и сообщает, укладывается ли
	// клиент в настроенный лимит текущего окна.
	Allow(ctx context.Context, key string) (bool, error)

	Close() error
}
