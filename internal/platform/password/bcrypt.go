// Package password provides one-way password hashing backed by bcrypt.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Kept above the library default so
// brute-forcing stolen hashes stays expensive.
const hashCost = 12

// maxPasswordBytes is bcrypt's input limit; longer passwords are truncated.
const maxPasswordBytes = 72

// BcryptHasher hashes and verifies passwords with bcrypt.
// Each Hash call draws a fresh random salt, so hashing the same password
// twice yields different outputs that both verify.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the service's standard cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

// Hash returns the bcrypt hash of the given plaintext password.
// The plaintext is never stored and cannot be recovered from the hash.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext candidate matches the stored hash.
// The comparison is constant-time inside bcrypt.
func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(plaintext)) == nil
}

// truncate clips the password to bcrypt's 72-byte input limit.
func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
