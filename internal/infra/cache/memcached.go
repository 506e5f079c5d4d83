package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// Memcached keeps archivist summaries in memcached, for deployments
// that already run it instead of redis.
type Memcached struct {
	client *memcache.Client
	ttl    time.Duration
}

func NewMemcached(client *memcache.Client, ttl time.Duration) *Memcached {
	return &Memcached{
		client: client,
		ttl:    ttl,
	}
}

func (m *Memcached) Get(ctx context.Context, key string) (string, bool) {
	item, err := m.client.Get(key)
	if err != nil {
		return "", false
	}
	return string(item.Value), true
}

func (m *Memcached) Set(ctx context.Context, key, value string) {
	m.client.Set(&memcache.Item{
		Key:        key,
		Value:      []byte(value),
		Expiration: int32(m.ttl.Seconds()),
	})
}
