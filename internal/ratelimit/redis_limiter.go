package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notekeep/internal/config"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodAllow = "allow"

	ErrorFailedToCount = "failed to count request in redis"
	ErrorFailedToClose = "failed to close redis connection"
)

const keyPrefix = "ratelimit:"

// RedisLimiter реализует интерфейс Limiter поверх Redis.
// Счетчик инкрементируется по ключу клиента; TTL окна выставляется
// тем же конвейером, так что счетчик не может остаться без срока жизни.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedisLimiter создает новый экземпляр RedisLimiter.
func NewRedisLimiter(ctx context.Context, cfg *config.RedisConfig, limit int, window time.Duration) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddressString(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}, nil
}

// Allow инкрементирует счетчик окна для ключа и сравнивает его с лимитом.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodAllow), zap.String("key", key))

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, keyPrefix+key)
	// NX: срок жизни выставляется только если его еще нет, так что
	// окно не продлевается последующими запросами.
	pipe.ExpireNX(ctx, keyPrefix+key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		log.Error(ctx, ErrorFailedToCount, zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCount, err)
	}

	return incr.Val() <= l.limit, nil
}

// Close закрывает соединение с Redis.
func (l *RedisLimiter) Close() error {
	if err := l.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}
