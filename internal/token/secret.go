package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const secretBytes = 32

// GenerateSecret returns a fresh 256-bit secret encoded for use in URLs.
func GenerateSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashSecret derives the stored lookup hash for a secret. An HMAC keyed with
// a server-side pepper is used instead of per-row salts because the hash
// doubles as the lookup key; the pepper gives equivalent at-rest protection.
func HashSecret(secret string, pepper []byte) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(secret))
	return hex.EncodeToString(mac.Sum(nil))
}
