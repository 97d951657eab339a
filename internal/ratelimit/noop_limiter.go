package ratelimit

import "context"

// NoopLimiter пропускает все запросы. Используется, когда ограничение
// частоты выключено конфигурацией.
type NoopLimiter struct{}

// NewNoopLimiter создает новый экземпляр NoopLimiter.
func NewNoopLimiter() *NoopLimiter {
	return &NoopLimiter{}
}

// Allow всегда разрешает запрос.
func (l *NoopLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// Close не делает ничего.
func (l *NoopLimiter) Close() error {
	return nil
}
