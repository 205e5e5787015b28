package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithOptions_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret-key")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "mailfleet", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "test-secret-key", cfg.Security.SecretKey)
	assert.Equal(t, "http://localhost:8080", cfg.Delivery.TrustedBaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Delivery.PaceInterval)
	assert.Equal(t, 5, cfg.Delivery.CircuitBreakerThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Delivery.CircuitBreakerCooldown)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "none", cfg.Tracing.TraceExporter)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadWithOptions_RequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadWithOptions_EnvOverrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "k")
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TRUSTED_BASE_URL", "https://mail.example.com/")
	t.Setenv("PACE_INTERVAL", "50ms")
	t.Setenv("CIRCUIT_BREAKER_THRESHOLD", "3")
	t.Setenv("CIRCUIT_BREAKER_COOLDOWN", "90s")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	// Trailing slash is trimmed so tracking URLs join cleanly.
	assert.Equal(t, "https://mail.example.com", cfg.Delivery.TrustedBaseURL)
	assert.Equal(t, 50*time.Millisecond, cfg.Delivery.PaceInterval)
	assert.Equal(t, 3, cfg.Delivery.CircuitBreakerThreshold)
	assert.Equal(t, 90*time.Second, cfg.Delivery.CircuitBreakerCooldown)
	assert.Equal(t, "ops@example.com", cfg.Alerts.AdminEmail)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadWithOptions_InvalidDurations(t *testing.T) {
	t.Setenv("SECRET_KEY", "k")

	t.Run("pace interval", func(t *testing.T) {
		t.Setenv("PACE_INTERVAL", "not-a-duration")
		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PACE_INTERVAL")
	})

	t.Run("breaker cooldown", func(t *testing.T) {
		t.Setenv("CIRCUIT_BREAKER_COOLDOWN", "nope")
		_, err := LoadWithOptions(LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CIRCUIT_BREAKER_COOLDOWN")
	})
}
