// File: utils/cache.go
package utils

import (
	"context"
	"sync"
	"time"

	"hireloop/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client. It stays nil when Redis was
// unreachable at startup.
var CacheClient *redis.Client

var cacheOnce sync.Once

// InitCache connects the Redis cache client once. The service keeps running
// when Redis is unreachable; readers fall back to MongoDB.
func InitCache() {
	cacheOnce.Do(connectCache)
}

func connectCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis cache unavailable, continuing without cache", zap.Error(err))
		_ = client.Close()
		CacheClient = nil
		return
	}
	CacheClient = client
}

// GetCacheClient returns the generic cache client, connecting on first use.
// The result is nil when Redis is unavailable.
func GetCacheClient() *redis.Client {
	InitCache()
	return CacheClient
}
