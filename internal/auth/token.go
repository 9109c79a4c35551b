package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 32

// NewToken mints a fresh opaque session token: 32 bytes from a
// cryptographically secure source, hex-encoded to 64 characters.
// Collisions are negligible; the caller is responsible for storing it.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
