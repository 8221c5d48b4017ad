package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "@every 5m", cfg.RefreshSpec)
	assert.Equal(t, 1200*time.Millisecond, cfg.SimulatedDelay)
	assert.Equal(t, log.INFO, cfg.Level())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"API_BASE_URL":      "http://10.0.0.5:9000///",
		"REQUEST_TIMEOUT":   "3s",
		"SESSION_TTL_HOURS": "2",
		"SIMULATED_DELAY":   "0s",
		"LOG_LEVEL":         "DEBUG",
	}))

	assert.Equal(t, "http://10.0.0.5:9000", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, time.Duration(0), cfg.SimulatedDelay)
	assert.Equal(t, log.DEBUG, cfg.Level())
}

func TestFromEnv_BadValuesFallBack(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"REQUEST_TIMEOUT":   "soon",
		"SESSION_TTL_HOURS": "-4",
		"API_BASE_URL":      "/",
	}))

	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestString_MasksSecret(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{"JWT_SECRET": "hunter2"}))
	out := cfg.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "***")
}
