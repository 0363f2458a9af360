package cache

import (
	"context"
	"fmt"

	"recipe-engine/internal/infrastructure/config"
	"recipe-engine/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisKeyPrefix = "recipe:gen:"

// RedisCache Redis 後端的回應快取
type RedisCache struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewRedisCache 創建 Redis 快取，啟動時測試連接
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("存活時間", cfg.TTL),
	)

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取的回應內容
func (s *RedisCache) Get(ctx context.Context, prompt string) (string, error) {
	key := redisKeyPrefix + hashString(prompt)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return data, nil
}

// Set 設置快取，TTL 由設定決定
func (s *RedisCache) Set(ctx context.Context, prompt, value string) error {
	key := redisKeyPrefix + hashString(prompt)

	if err := s.client.Set(ctx, key, value, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	common.LogInfo("快取已儲存",
		zap.String("鍵", key),
	)
	return nil
}

// Close 關閉 Redis 連接
func (s *RedisCache) Close() error {
	return s.client.Close()
}
