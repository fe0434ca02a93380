package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.GoogleRedirectURI)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg := Load()
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
}
