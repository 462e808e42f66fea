package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken returns a hex-encoded token built from n cryptographically
// random bytes
func RandomToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
