package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when no explicit cost is
// configured. bcrypt embeds its own per-hash salt, so two hashes of the
// same password never compare equal byte-for-byte.
const DefaultBcryptCost = 12

// HashPassword derives a one-way, salted bcrypt hash of the given
// plain-text password using the provided cost. Costs outside the range
// supported by bcrypt fall back to [DefaultBcryptCost].
//
// Returns the encoded hash string ready for storage, or an error if
// hashing fails (e.g. the password exceeds bcrypt's 72-byte limit).
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// ComparePassword reports whether the plain-text password matches the
// stored bcrypt hash. The comparison runs in constant time inside bcrypt.
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
