package session

import (
	"fmt"
	"time"
)

// Backend names a session storage model.
type Backend string

const (
	// BackendMemory keeps sessions in process memory behind an opaque id
	BackendMemory Backend = "memory"
	// BackendSigned carries sessions inside HMAC-signed tokens
	BackendSigned Backend = "signed"
	// BackendRedis keeps sessions in Redis behind an opaque id
	BackendRedis Backend = "redis"
)

// Config holds session store configuration
type Config struct {
	// Backend selects the store implementation (default: "memory")
	Backend Backend `env:"SESSION_BACKEND" envDefault:"memory"`

	// Secret is the HMAC key for the signed backend
	Secret string `env:"SESSION_SECRET"`

	// MaxAge is recorded by the signed backend and used as the key TTL by the redis backend
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`

	RedisKeyPrefix string `env:"SESSION_REDIS_KEY_PREFIX" envDefault:"session:"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		Backend:        BackendMemory,
		MaxAge:         30 * 24 * time.Hour,
		RedisKeyPrefix: defaultKeyPrefix,
	}
}

// NewFromConfig creates the store selected by cfg.Backend.
// The redis backend requires WithRedisClient.
func NewFromConfig(cfg Config, opts ...Option) (Store, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemoryStore(opts...), nil

	case BackendSigned:
		return NewSignedStore([]byte(cfg.Secret), cfg.MaxAge, opts...)

	case BackendRedis:
		o := newOptions(opts)
		configOpts := []Option{WithTTL(cfg.MaxAge)}
		if cfg.RedisKeyPrefix != "" {
			configOpts = append(configOpts, WithKeyPrefix(cfg.RedisKeyPrefix))
		}
		// Explicit options win over config values.
		configOpts = append(configOpts, opts...)
		return NewRedisStore(o.redisClient, configOpts...)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
