package config_test

import (
	"testing"

	"github.com/placeshare/places-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJWTSecret satisfies the 32-character minimum.
const testJWTSecret = "test-secret-with-enough-characters-0123456789"

func TestLoad_DefaultsWithRequiredEnv(t *testing.T) {
	t.Setenv("PLACES_DATABASE_URL", "postgres://localhost:5432/places_test")
	t.Setenv("PLACES_AUTH_JWT_SECRET", testJWTSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/places_test", cfg.Database.URL)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 60, cfg.Auth.SignupTokenLifetimeMinutes)
	assert.Equal(t, 30, cfg.Auth.LoginTokenLifetimeMinutes)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "uploads/images", cfg.Upload.Dir)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("PLACES_DATABASE_URL", "postgres://localhost:5432/places_test")
	t.Setenv("PLACES_AUTH_JWT_SECRET", testJWTSecret)
	t.Setenv("PLACES_SERVER_PORT", "8080")
	t.Setenv("PLACES_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PLACES_AUTH_SIGNUP_TOKEN_LIFETIME_MINUTES", "120")
	t.Setenv("PLACES_UPLOAD_DIR", "/var/lib/places/uploads")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 120, cfg.Auth.SignupTokenLifetimeMinutes)
	assert.Equal(t, "/var/lib/places/uploads", cfg.Upload.Dir)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing JWT secret",
			env: map[string]string{
				"PLACES_DATABASE_URL": "postgres://localhost:5432/places_test",
			},
		},
		{
			name: "JWT secret too short",
			env: map[string]string{
				"PLACES_DATABASE_URL":    "postgres://localhost:5432/places_test",
				"PLACES_AUTH_JWT_SECRET": "short",
			},
		},
		{
			name: "missing database URL",
			env: map[string]string{
				"PLACES_AUTH_JWT_SECRET": testJWTSecret,
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"PLACES_DATABASE_URL":     "postgres://localhost:5432/places_test",
				"PLACES_AUTH_JWT_SECRET":  testJWTSecret,
				"PLACES_SERVER_LOG_LEVEL": "verbose",
			},
		},
		{
			name: "bcrypt cost out of range",
			env: map[string]string{
				"PLACES_DATABASE_URL":     "postgres://localhost:5432/places_test",
				"PLACES_AUTH_JWT_SECRET":  testJWTSecret,
				"PLACES_AUTH_BCRYPT_COST": "99",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
