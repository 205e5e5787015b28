package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mailfleet/mailfleet/config"
)

func TestGetDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "mailer",
		Password: "pw",
		DBName:   "mailfleet",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"postgres://mailer:pw@db.internal:5433/mailfleet?sslmode=disable",
		GetDSN(cfg))
	assert.Equal(t,
		"postgres://mailer:pw@db.internal:5433/postgres?sslmode=disable",
		GetPostgresDSN(cfg))
}

func TestGetConnectionPoolSettings(t *testing.T) {
	t.Run("test environment", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "test")
		maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings()
		assert.Equal(t, 10, maxOpen)
		assert.Equal(t, 5, maxIdle)
		assert.Equal(t, 2*time.Minute, maxLifetime)
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("ENVIRONMENT", "production")
		maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings()
		assert.Equal(t, 25, maxOpen)
		assert.Equal(t, 25, maxIdle)
		assert.Equal(t, 20*time.Minute, maxLifetime)
	})
}
