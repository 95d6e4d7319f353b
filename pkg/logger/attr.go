package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors yield an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Backend records the session backend name under "backend".
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// SessionID records a fingerprint of a session id or token under "session".
// The first 8 bytes of its SHA-256 are logged, never the value itself.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	sum := sha256.Sum256([]byte(id))
	return slog.String("session", hex.EncodeToString(sum[:8]))
}

// Size records a byte length under "size".
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}

// Duration records a duration under "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
