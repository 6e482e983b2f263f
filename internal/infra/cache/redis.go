package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lodging-service/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const cacheName = "catalog"

type Observer interface {
	ObserveCache(cache, event string)
}

// RedisCache stores JSON values under a key prefix.
type RedisCache struct {
	client   redis.UniversalClient
	prefix   string
	observer Observer
}

func NewRedisCache(client redis.UniversalClient, prefix string, observer Observer) *RedisCache {
	return &RedisCache{
		client:   client,
		prefix:   prefix,
		observer: observer,
	}
}

func (r *RedisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.observe("miss")
		return false, nil
	}
	if err != nil {
		r.observe("error")
		return false, errs.Wrapf(err, "redis get %s", key)
	}

	if err := json.Unmarshal(v, dst); err != nil {
		r.observe("error")
		return false, errs.Wrapf(err, "decoding cached %s", key)
	}
	r.observe("hit")
	return true, nil
}

func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "encoding %s", key)
	}

	if err := r.client.Set(ctx, r.prefix+key, b, ttl).Err(); err != nil {
		r.observe("error")
		return errs.Wrapf(err, "redis set %s", key)
	}
	r.observe("set")
	return nil
}

func (r *RedisCache) observe(event string) {
	if r.observer != nil {
		r.observer.ObserveCache(cacheName, event)
	}
}

// NoopCache is used when no Redis address is configured. Every read is a miss.
type NoopCache struct{}

func (NoopCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (NoopCache) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}
