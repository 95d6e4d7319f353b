package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// idBytes is the amount of entropy in a generated session id (256 bits).
const idBytes = 32

// generateID returns 32 random bytes as 64 lowercase hex characters.
func generateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrStorage, err)
	}
	return hex.EncodeToString(b), nil
}
