package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigWithDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "https://sdf.ndbc.noaa.gov/sos/server.php", cfg.SOSBaseURL)
	assert.Equal(t, "https://www.ndbc.noaa.gov/buoycam.php", cfg.BuoyCamBaseURL)
}

func TestWithEnvironment(t *testing.T) {
	cfg := New(WithEnvironment("development"))

	assert.Equal(t, "development", cfg.Environment)
}

func TestWithLogLevel(t *testing.T) {
	cfg := New(WithLogLevel("debug"))

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestWithLogLevelInvalid(t *testing.T) {
	cfg := New(WithLogLevel("not-a-level"))

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestWithHTTPTimeout(t *testing.T) {
	cfg := New(WithHTTPTimeout(5 * time.Second))

	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestWithSOSBaseURL(t *testing.T) {
	cfg := New(WithSOSBaseURL("http://localhost:8080/sos"))

	assert.Equal(t, "http://localhost:8080/sos", cfg.SOSBaseURL)
}

func TestInitializeLogging(t *testing.T) {
	cfg := New(WithEnvironment("local"), WithLogLevel("debug"))
	cfg.InitializeLogging()

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("SOS_BASE_URL", "http://localhost:8080/sos")
	t.Setenv("BUOYCAM_BASE_URL", "http://localhost:8080/buoycam")

	cfg := LoadFromEnv()

	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "http://localhost:8080/sos", cfg.SOSBaseURL)
	assert.Equal(t, "http://localhost:8080/buoycam", cfg.BuoyCamBaseURL)
}

func TestGetEnvOrDefault(t *testing.T) {
	err := os.Setenv("TEST_ENV_VAR", "value")
	if err != nil {
		return
	}
	defer func() {
		err := os.Unsetenv("TEST_ENV_VAR")
		if err != nil {
			return
		}
	}()

	assert.Equal(t, "value", getEnvOrDefault("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnvOrDefault("NON_EXISTENT_ENV_VAR", "default"))
}

func TestGetDurationEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_DURATION_ENV_VAR", "2s")

	assert.Equal(t, 2*time.Second, getDurationEnvOrDefault("TEST_DURATION_ENV_VAR", time.Second))
	assert.Equal(t, time.Second, getDurationEnvOrDefault("NON_EXISTENT_ENV_VAR", time.Second))

	t.Setenv("TEST_DURATION_ENV_VAR", "not-a-duration")
	assert.Equal(t, time.Second, getDurationEnvOrDefault("TEST_DURATION_ENV_VAR", time.Second))
}
