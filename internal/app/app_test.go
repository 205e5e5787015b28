package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mailfleet/mailfleet/config"
	"github.com/mailfleet/mailfleet/pkg/alerts"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, Host: "127.0.0.1"},
		Security: config.SecurityConfig{
			SecretKey: "test-secret-key",
		},
		Delivery: config.DeliveryConfig{
			TrustedBaseURL:          "http://localhost:8080",
			PaceInterval:            time.Millisecond,
			CircuitBreakerThreshold: 5,
			CircuitBreakerCooldown:  5 * time.Minute,
		},
		Environment: "test",
		LogLevel:    "disabled",
		Version:     "test",
	}
}

func TestNewApp(t *testing.T) {
	app := NewApp(testConfig())

	assert.NotNil(t, app.GetConfig())
	assert.NotNil(t, app.GetLogger())
	assert.NotNil(t, app.GetMux())
	assert.Nil(t, app.GetDB())
}

func TestNewApp_Options(t *testing.T) {
	log := logger.NewLoggerWithLevel("disabled")
	mailer := alerts.NewConsoleMailer()

	app := NewApp(testConfig(), WithLogger(log), WithMailer(mailer))

	assert.Equal(t, log, app.logger)
	assert.Equal(t, mailer, app.mailer)
}

func TestApp_InitMailer(t *testing.T) {
	t.Run("falls back to console without SMTP config", func(t *testing.T) {
		app := NewApp(testConfig())
		app.InitMailer()

		assert.IsType(t, &alerts.ConsoleMailer{}, app.mailer)
	})

	t.Run("uses SMTP when fully configured", func(t *testing.T) {
		cfg := testConfig()
		cfg.Alerts = config.AlertConfig{
			SMTPHost:   "smtp.example.com",
			SMTPPort:   587,
			FromEmail:  "alerts@example.com",
			AdminEmail: "ops@example.com",
		}
		app := NewApp(cfg)
		app.InitMailer()

		assert.IsType(t, &alerts.SMTPMailer{}, app.mailer)
	})

	t.Run("keeps an injected mailer", func(t *testing.T) {
		mailer := alerts.NewConsoleMailer()
		app := NewApp(testConfig(), WithMailer(mailer))
		app.InitMailer()

		assert.Equal(t, mailer, app.mailer)
	})
}

func TestApp_gracefulShutdownMiddleware(t *testing.T) {
	t.Run("passes requests through and tracks them", func(t *testing.T) {
		app := NewApp(testConfig())

		var seen int64
		handler := app.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = app.getActiveRequestCount()
			w.WriteHeader(http.StatusNoContent)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, int64(1), seen)
		assert.Equal(t, int64(0), app.getActiveRequestCount())
	})

	t.Run("refuses new requests during shutdown", func(t *testing.T) {
		app := NewApp(testConfig())
		app.shutdownCancel()

		handler := app.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run during shutdown")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
