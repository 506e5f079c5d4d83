package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps archivist summaries in a shared redis instance.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key, value string) {
	r.client.Set(ctx, key, value, r.ttl)
}
