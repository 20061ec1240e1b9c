package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type RedisStore struct {
	client redis.Cmdable
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}

	logrus.WithField("addr", opts.Addr).Info("cache: redis connected")

	return client, nil
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", translateError(err)
	}

	return value, nil
}

// Set ignora TTL não positivo: uma entrada sem expiração nunca deve ser criada
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return s.client.Set(ctx, key, value, ttl).Err()
}

func translateError(err error) error {
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}

	return err
}
