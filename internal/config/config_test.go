package config

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "PORT", "SIMSEA_XLSX_ENABLED", "SIMSEA_RETRY_ATTEMPTS", "SIMSEA_RETRY_BASE_DELAY_MS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
	t.Setenv("PORT", "8080")
	t.Setenv("PSQL_HOST", "db")
	t.Setenv("PSQL_DB_NAME", "simsea_test")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DatabaseURL, "db:5432/simsea_test")
	assert.Contains(t, cfg.DatabaseURL, "sslmode=disable")
	assert.True(t, cfg.XLSXEnabled, "unparseable bool keeps default")
	assert.Equal(t, 6, cfg.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.RetryBaseDelay)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h/x")
	t.Setenv("SIMSEA_XLSX_ENABLED", "false")
	t.Setenv("SIMSEA_RETRY_ATTEMPTS", "2")
	t.Setenv("SIMSEA_RETRY_BASE_DELAY_MS", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENVIRONMENT", "Production")

	cfg := Load()
	assert.Equal(t, "postgres://u:p@h/x", cfg.DatabaseURL)
	assert.False(t, cfg.XLSXEnabled)
	assert.Equal(t, 2, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Millisecond, cfg.RetryBaseDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoggerFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	LogError(logger, "records", "Create", "insert", map[string]int{"id": 7}, errors.New("boom"))
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"module":"records"`)
	assert.Contains(t, out, `"msg":"boom"`)

	fallback := newLogger("nonsense", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, fallback.GetLevel())
}

func TestNewS3ConfigRequiresBucket(t *testing.T) {
	_, err := NewS3Config(context.Background(), &Config{})
	require.ErrorIs(t, err, ErrS3NotConfigured)
}
