package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/storefront/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

// KVStore — строковое хранилище в Redis; ключи без TTL, как в localStorage браузера.
type KVStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewKVStore — prefix добавляется ко всем ключам (например, "storefront:").
func NewKVStore(client goredis.UniversalClient, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
