package commitment

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/KirkDiggler/duelarena/internal/models"
	"golang.org/x/crypto/sha3"
)

const (
	// DigestSize is the length in bytes of a commitment digest
	DigestSize = 32

	// SecretSize is the length in bytes of a commitment secret
	SecretSize = 16
)

// ErrBadSecret is returned when a secret string cannot be parsed
var ErrBadSecret = errors.New("secret must be 32 hex characters")

// Secret is the caller-chosen 128-bit value that blinds a commitment.
// It must be unpredictable; an opponent who can enumerate secrets can
// recover the move from the digest by brute force.
type Secret [SecretSize]byte

// String returns the hex encoding of the secret
func (s Secret) String() string {
	return hex.EncodeToString(s[:])
}

// NewSecret generates a random secret
func NewSecret() (Secret, error) {
	var s Secret
	if _, err := rand.Read(s[:]); err != nil {
		return Secret{}, fmt.Errorf("failed to generate secret: %w", err)
	}
	return s, nil
}

// ParseSecret decodes a hex-encoded secret
func ParseSecret(h string) (Secret, error) {
	raw, err := hex.DecodeString(h)
	if err != nil || len(raw) != SecretSize {
		return Secret{}, ErrBadSecret
	}
	var s Secret
	copy(s[:], raw)
	return s, nil
}

// Digest computes the commitment digest for a move and secret:
// Keccak-256 over the move byte followed by the 16 secret bytes.
// The digest hides the move (the secret blinds it) and binds it (a
// different move cannot produce the same digest without a collision).
func Digest(move models.Move, secret Secret) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte{byte(move)})
	h.Write(secret[:])
	return h.Sum(nil)
}

// Verify reports whether the claimed move and secret open the digest
func Verify(digest []byte, move models.Move, secret Secret) bool {
	if len(digest) != DigestSize {
		return false
	}
	return subtle.ConstantTimeCompare(digest, Digest(move, secret)) == 1
}
