package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, 12*time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, "noop", cfg.EmailConfig.Provider)
	assert.Equal(t, float64(1), cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Empty(t, cfg.TrustedProxies)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "10 de Janeiro de 2026 | 13h", cfg.EventConfig.Date)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("EMAIL_DESTINATARIO", "noivos@example.com")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")
	t.Setenv("STATIC_DIR", "/srv/rsvp/static")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "ses", cfg.EmailConfig.Provider)
	assert.Equal(t, "noivos@example.com", cfg.EmailConfig.Recipient)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxies)
	assert.Equal(t, "/srv/rsvp/static", cfg.StaticDir)
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
