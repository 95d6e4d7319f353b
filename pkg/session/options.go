package session

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

const defaultKeyPrefix = "session:"

type options struct {
	logger      *slog.Logger
	redisClient redis.UniversalClient
	keyPrefix   string
	ttl         time.Duration
}

// Option is a functional option shared by the store constructors.
// Options a backend does not use are ignored.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		logger:    logger.Discard(),
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used to report rejected tokens and storage failures.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRedisClient sets the client used by the redis backend
func WithRedisClient(client redis.UniversalClient) Option {
	return func(o *options) {
		o.redisClient = client
	}
}

// WithKeyPrefix sets the redis key prefix (default "session:")
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		o.keyPrefix = prefix
	}
}

// WithTTL sets the redis expiry applied on every save. Zero disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.ttl = ttl
	}
}
