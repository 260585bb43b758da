package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"rsvp/internal/domain"
)

type bcryptVerifier struct {
	hash []byte
}

// NewBcryptVerifier hashes the configured admin password once so that each
// check goes through bcrypt.CompareHashAndPassword instead of a plain string compare.
func NewBcryptVerifier(password string, cost int) (domain.PasswordVerifier, error) {
	if password == "" {
		return nil, fmt.Errorf("admin password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &bcryptVerifier{hash: hash}, nil
}

// NewBcryptHashVerifier verifies against an existing bcrypt hash.
func NewBcryptHashVerifier(hash string) domain.PasswordVerifier {
	return &bcryptVerifier{hash: []byte(hash)}
}

func (v *bcryptVerifier) Verify(password string) error {
	if password == "" {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
