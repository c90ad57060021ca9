package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hireloop/models"

	"github.com/go-redis/redis/v8"
)

// SettingsCache stores the serialized settings snapshot.
type SettingsCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context) (*models.AdminSettings, error)
	Set(ctx context.Context, s models.AdminSettings, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// RedisSettingsCache keeps the snapshot under a single key.
type RedisSettingsCache struct {
	Client *redis.Client
	Key    string
}

func NewRedisSettingsCache(client *redis.Client, key string) *RedisSettingsCache {
	return &RedisSettingsCache{Client: client, Key: key}
}

func (c *RedisSettingsCache) Get(ctx context.Context) (*models.AdminSettings, error) {
	data, err := c.Client.Get(ctx, c.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s models.AdminSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *RedisSettingsCache) Set(ctx context.Context, s models.AdminSettings, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.Key, data, ttl).Err()
}

func (c *RedisSettingsCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, c.Key).Err()
}
