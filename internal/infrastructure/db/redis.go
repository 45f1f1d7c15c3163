package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/config"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
)

// NewRedisClient creates and pings a Redis client.
func NewRedisClient(cfg *config.RedisConfig, zapLogger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	zapLogger.Info("redis connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	return client, nil
}

// RedisRepository implements the cache repository over Redis.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates the Redis-backed cache repository.
func NewRedisRepository(client *redis.Client) repository.CacheRepository {
	return &RedisRepository{client: client}
}

// Set stores a value under key with the given expiration.
func (r *RedisRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves the value for key. A miss returns redis.Nil.
func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Delete removes a key.
func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// IsNotFound reports whether err denotes a cache miss.
func (r *RedisRepository) IsNotFound(err error) bool {
	return err == redis.Nil
}
