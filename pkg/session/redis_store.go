package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// RedisStore keeps sessions in Redis under "<prefix><id>" as JSON.
// Expiry, when configured with WithTTL, is left to Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient, opts ...Option) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNoRedisClient
	}

	o := newOptions(opts)

	return &RedisStore{
		client: client,
		prefix: o.keyPrefix,
		ttl:    o.ttl,
		logger: o.logger.With(logger.Component("session"), logger.Backend(string(BackendRedis))),
	}, nil
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

// Load returns the session stored under id, or nil if the key does not exist.
func (r *RedisStore) Load(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, nil
	}

	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to load session", logger.SessionID(id), logger.Error(err))
		return nil, errors.Join(ErrStorage, err)
	}

	data := NewData()
	if err := json.Unmarshal(val, data); err != nil {
		r.logger.WarnContext(ctx, "stored session has undecodable body", logger.SessionID(id), logger.Error(err))
		return nil, errors.Join(ErrSerialization, err)
	}

	return data, nil
}

// Save writes data under id, allocating a new id when id is empty.
// Every save resets the key's TTL.
func (r *RedisStore) Save(ctx context.Context, id string, data *Data) (string, error) {
	if data == nil {
		data = NewData()
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}

	if id == "" {
		if id, err = generateID(); err != nil {
			return "", err
		}
	}

	if err := r.client.Set(ctx, r.key(id), payload, r.ttl).Err(); err != nil {
		r.logger.ErrorContext(ctx, "failed to save session", logger.SessionID(id), logger.Error(err))
		return "", errors.Join(ErrStorage, err)
	}

	return id, nil
}

// Delete removes the session key. Missing keys are not an error.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.ErrorContext(ctx, "failed to delete session", logger.SessionID(id), logger.Error(err))
		return errors.Join(ErrStorage, err)
	}
	return nil
}

// Cleanup reports zero: Redis evicts expired keys on its own.
func (r *RedisStore) Cleanup(ctx context.Context) (int, error) {
	return 0, nil
}

// Ping checks connectivity to the underlying Redis server.
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrStorage, err)
	}
	return nil
}
