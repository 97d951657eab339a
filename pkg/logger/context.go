package logger

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrLoggerNotFound возвращается, когда к контексту не прикреплен логгер.
var ErrLoggerNotFound = errors.New("no logger attached to context")

type loggerKey struct{}

// Логгер процесса назначается один раз при старте. До этого момента
// записи уходят в резервный логгер уровня warn, чтобы ошибки раннего
// этапа запуска не терялись.
var (
	processMu     sync.RWMutex
	processLogger *Logger
	reserveLogger *Logger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zl, _ := cfg.Build()
	reserveLogger = &Logger{l: zl}
}

// NewContext прикрепляет логгер к контексту.
func NewContext(ctx context.Context, log *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext возвращает логгер, прикрепленный к контексту.
func FromContext(ctx context.Context) (*Logger, error) {
	if ctx == nil {
		return nil, ErrLoggerNotFound
	}

	log, ok := ctx.Value(loggerKey{}).(*Logger)
	if !ok {
		return nil, ErrLoggerNotFound
	}
	return log, nil
}

// SetGlobalLogger назначает логгер процесса.
func SetGlobalLogger(log *Logger) {
	processMu.Lock()
	defer processMu.Unlock()
	processLogger = log
}

// Log возвращает логгер контекста, иначе логгер процесса, иначе резервный.
// Никогда не возвращает nil.
func Log(ctx context.Context) *Logger {
	if log, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return log
	}

	processMu.RLock()
	defer processMu.RUnlock()

	if processLogger != nil {
		return processLogger
	}
	return reserveLogger
}
