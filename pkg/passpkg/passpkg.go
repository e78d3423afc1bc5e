// Package passpkg provides one-way PIN hashing.
//
// Only the digest is ever stored; the plaintext PIN is discarded after hashing.
package passpkg

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of the given PIN.
func Hash(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}

	return string(hashed), nil
}

// Check checks if the given PIN matches the stored hash.
func Check(pin string, hashedPin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPin), []byte(pin))
}
