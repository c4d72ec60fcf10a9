package redisstore

import (
	"context"
	"errors"

	redis "github.com/redis/go-redis/v9"
	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
)

const defaultPrefix = "feefeefee:"

type store struct {
	client *redis.Client
	prefix string
}

// New returns a Store keeping each key under prefix. Values never expire.
func New(client *redis.Client, prefix string) storedomain.Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &store{client: client, prefix: prefix}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storedomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
