package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище журнала бронирований в Redis
type RedisStore struct {
	redis *redis.Client
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

// Get возвращает значение по ключу или ErrKeyNotFound
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrRedis, key, err)
	}
	return data, nil
}

// Set записывает значение без срока жизни: устаревшие даты не удаляются
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.redis.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrRedis, key, err)
	}
	return nil
}
