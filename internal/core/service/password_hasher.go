package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 12

// PasswordHasher derives and verifies storage-safe password hashes.
//
// The plaintext is first digested with SHA-256 and hex-encoded, then the
// 64-byte digest goes through bcrypt. The pre-digest keeps arbitrarily long
// passwords inside bcrypt's 72-byte input limit; bcrypt contributes the
// per-password salt and the tunable cost. The resulting string embeds
// algorithm, cost, salt and hash, so verification needs no side channel.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost. Costs outside
// bcrypt's valid range fall back to DefaultBcryptCost. Tests pass
// bcrypt.MinCost to avoid the ~250ms a cost-12 hash takes.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the pre-digested plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(predigest(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed stored
// value is simply no match, never an error: the auth flow treats both cases as
// failed credentials.
func (h *PasswordHasher) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), predigest(plaintext)) == nil
}

// predigest normalises the plaintext to a fixed-length input for bcrypt.
func predigest(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(hex.EncodeToString(sum[:]))
}
