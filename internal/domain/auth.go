package domain

import (
	"errors"
	"time"
)

// ErrUnauthorized is returned when admin credentials or tokens are rejected.
var ErrUnauthorized = errors.New("unauthorized")

// AdminSubject is the token subject used for admin sessions.
const AdminSubject = "admin"

// PasswordVerifier checks a submitted admin password.
type PasswordVerifier interface {
	Verify(password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AdminAuthService exchanges the admin password for a session token.
type AdminAuthService interface {
	Login(password string) (token string, err error)
	CheckPassword(password string) error
	CheckToken(token string) error
}
