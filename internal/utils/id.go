package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns an opaque 32-character identifier built from 16 bytes of
// cryptographically secure randomness.  Lot and ticket IDs use this scheme;
// no collision detection is performed.
func NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
