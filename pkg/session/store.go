package session

import "context"

// Store defines the interface for session persistence.
// An empty id means "no id".
type Store interface {
	// Load resolves an id or token to its data.
	// A nil result with a nil error means no session exists.
	Load(ctx context.Context, id string) (*Data, error)

	// Save persists data and returns the id the client should hold from now on.
	Save(ctx context.Context, id string, data *Data) (string, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// Cleanup purges expired sessions and returns how many were removed
	Cleanup(ctx context.Context) (int, error)
}
