package session

import "errors"

var (
	// ErrInvalid indicates a malformed token or a signature mismatch.
	// Callers should treat it exactly like "no session".
	ErrInvalid = errors.New("session.invalid")

	// ErrSerialization indicates the session payload could not be encoded or decoded
	ErrSerialization = errors.New("session.serialization")

	// ErrStorage indicates the backing store failed
	ErrStorage = errors.New("session.storage")

	// ErrExpired is reserved for backends that track expiry themselves
	ErrExpired = errors.New("session.expired")

	// ErrNoSecret indicates a signed store was configured without a secret
	ErrNoSecret = errors.New("session.no_secret")

	// ErrUnknownBackend indicates an unsupported backend name in Config
	ErrUnknownBackend = errors.New("session.unknown_backend")

	// ErrNoRedisClient indicates the redis backend was selected without a client
	ErrNoRedisClient = errors.New("session.no_redis_client")
)
