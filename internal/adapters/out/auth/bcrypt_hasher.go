// Package auth implements the credential hashing and token signing ports
// with bcrypt and JWT.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptPasswordHasher hashes passwords with bcrypt at the default cost.
type BcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a hasher using bcrypt's default cost.
func NewBcryptPasswordHasher() BcryptPasswordHasher {
	return BcryptPasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted bcrypt hash of the password.
func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether the password matches the stored hash.
func (BcryptPasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
