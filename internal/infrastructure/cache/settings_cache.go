package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/doctorplanet-med/doctor-planet-sub001/internal/domain/entity"
)

const settingsKey = "bill_settings"

// SettingsCache caches the singleton bill settings row so that every receipt
// render does not hit the database.
type SettingsCache interface {
	Get(ctx context.Context) (*entity.BillSettings, bool, error)
	Set(ctx context.Context, settings *entity.BillSettings, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type RedisSettingsCache struct {
	client *redis.Client
}

func NewRedisSettingsCache(addr string, password string, db int) *RedisSettingsCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSettingsCache{client: client}
}

func (c *RedisSettingsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSettingsCache) Close() error {
	return c.client.Close()
}

func (c *RedisSettingsCache) Get(ctx context.Context) (*entity.BillSettings, bool, error) {
	val, err := c.client.Get(ctx, settingsKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var settings entity.BillSettings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return nil, false, err
	}
	return &settings, true, nil
}

func (c *RedisSettingsCache) Set(ctx context.Context, settings *entity.BillSettings, ttl time.Duration) error {
	if settings == nil {
		return nil
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, settingsKey, payload, ttl).Err()
}

func (c *RedisSettingsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, settingsKey).Err()
}

// NoopSettingsCache is used when Redis is disabled.
type NoopSettingsCache struct{}

func NewNoopSettingsCache() *NoopSettingsCache { return &NoopSettingsCache{} }

func (NoopSettingsCache) Get(ctx context.Context) (*entity.BillSettings, bool, error) {
	return nil, false, nil
}

func (NoopSettingsCache) Set(ctx context.Context, settings *entity.BillSettings, ttl time.Duration) error {
	return nil
}

func (NoopSettingsCache) Invalidate(ctx context.Context) error { return nil }
