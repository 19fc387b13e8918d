package otp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shomrim_dispatch/internal/models"
)

const redisKeyPrefix = "otp:"

// RedisStore - хранилище кодов в Redis, общее для нескольких экземпляров сервиса.
// Ключ живёт ttl+grace, чтобы истёкший код ещё некоторое время отвечал ErrExpired.
type RedisStore struct {
	client *redis.Client
	locks  *keyedMutex
	grace  time.Duration
	settings
}

func NewRedisStore(client *redis.Client, grace time.Duration, opts ...Option) *RedisStore {
	s := &RedisStore{
		client:   client,
		locks:    newKeyedMutex(),
		grace:    grace,
		settings: defaultSettings(),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

func (s *RedisStore) Issue(ctx context.Context, phone, code string, ttl time.Duration) error {
	unlock := s.locks.Lock(phone)
	defer unlock()

	hash, err := hashCode(code, s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash otp: %w", err)
	}

	key := redisKeyPrefix + phone
	expiresAt := s.now().Add(ttl)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "hash", string(hash), "expires_at", expiresAt.UnixNano())
		pipe.PExpire(ctx, key, ttl+s.grace)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store otp in redis: %w", err)
	}
	return nil
}

// Verify читает и удаляет код под WATCH: если код перевыпущен во время проверки,
// транзакция не проходит и проверка завершается ErrMismatch.
func (s *RedisStore) Verify(ctx context.Context, phone, code string) error {
	unlock := s.locks.Lock(phone)
	defer unlock()

	key := redisKeyPrefix + phone
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to read otp from redis: %w", err)
		}
		if len(fields) == 0 {
			return fmt.Errorf("no otp for %s: %w", phone, models.ErrNotFound)
		}

		nanos, err := strconv.ParseInt(fields["expires_at"], 10, 64)
		if err != nil {
			return fmt.Errorf("corrupted otp expiry for %s: %w", phone, err)
		}

		if s.now().After(time.Unix(0, nanos)) {
			if err := retire(ctx, tx, key); err != nil {
				return err
			}
			return fmt.Errorf("otp for %s: %w", phone, models.ErrExpired)
		}

		if !codeMatches([]byte(fields["hash"]), code) {
			return fmt.Errorf("otp for %s: %w", phone, models.ErrMismatch)
		}
		return retire(ctx, tx, key)
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return fmt.Errorf("otp for %s changed during verification: %w", phone, models.ErrMismatch)
	}
	return err
}

// Sweep ничего не делает: истёкшие ключи удаляет сам Redis
func (s *RedisStore) Sweep(ctx context.Context) (int, error) {
	return 0, nil
}

func retire(ctx context.Context, tx *redis.Tx, key string) error {
	_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		return nil
	})
	return err
}
