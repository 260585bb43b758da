package services

import (
	"fmt"
	"time"

	"rsvp/internal/domain"
)

type adminAuthService struct {
	passwords domain.PasswordVerifier
	issuer    domain.TokenIssuer
	verifier  domain.TokenVerifier
	expiry    time.Duration
}

// NewAdminAuthService creates an AdminAuthService issuing admin tokens valid for expiry.
func NewAdminAuthService(passwords domain.PasswordVerifier, issuer domain.TokenIssuer, verifier domain.TokenVerifier, expiry time.Duration) domain.AdminAuthService {
	return &adminAuthService{
		passwords: passwords,
		issuer:    issuer,
		verifier:  verifier,
		expiry:    expiry,
	}
}

func (s *adminAuthService) Login(password string) (string, error) {
	if err := s.passwords.Verify(password); err != nil {
		return "", domain.ErrUnauthorized
	}
	token, err := s.issuer.Issue(domain.AdminSubject, s.expiry)
	if err != nil {
		return "", fmt.Errorf("issue admin token: %w", err)
	}
	return token, nil
}

func (s *adminAuthService) CheckPassword(password string) error {
	if err := s.passwords.Verify(password); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *adminAuthService) CheckToken(token string) error {
	subject, err := s.verifier.Verify(token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if subject != domain.AdminSubject {
		return domain.ErrUnauthorized
	}
	return nil
}
