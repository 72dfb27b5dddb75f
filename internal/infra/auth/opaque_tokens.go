package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"

	"backoffice/internal/domain/service"
)

// tokenEntropyBytes is the amount of randomness behind each mailed token.
const tokenEntropyBytes = 32

// opaqueTokens issues URL-safe random tokens and verifies them against the
// SHA-256 hex digest kept at rest. The raw token never touches storage.
type opaqueTokens struct{}

// NewOpaqueTokens is the constructor for opaqueTokens.
func NewOpaqueTokens() service.OpaqueTokens {
	return &opaqueTokens{}
}

// Issue returns a fresh raw token and the hash to store for it.
func (t *opaqueTokens) Issue() (string, string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate token")
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return raw, hashToken(raw), nil
}

// Matches reports whether the raw token corresponds to the stored hash.
func (t *opaqueTokens) Matches(raw, hash string) bool {
	if raw == "" || hash == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(hashToken(raw)), []byte(hash)) == 1
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
