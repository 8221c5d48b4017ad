package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const DefaultAPIBaseURL = "https://farm-connect.amritagrotech.com"

type AppConfig struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	Port           string
	JWTSecret      string
	SessionTTL     time.Duration
	RefreshSpec    string
	JournalDSN     string
	CatalogPath    string
	EndpointsFile  string
	SimulatedDelay time.Duration
	LogLevel       string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debugf("[cfg] no .env file loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function so tests can feed a map.
func FromEnv(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}
	dur := func(k string, def time.Duration) time.Duration {
		if d, err := time.ParseDuration(get(k, "")); err == nil && d >= 0 {
			return d
		}
		return def
	}
	ttlHours, err := strconv.Atoi(get("SESSION_TTL_HOURS", "12"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 12
	}

	cfg := AppConfig{
		APIBaseURL:     strings.TrimRight(get("API_BASE_URL", DefaultAPIBaseURL), "/"),
		RequestTimeout: dur("REQUEST_TIMEOUT", 15*time.Second),
		Port:           get("PORT", "8080"),
		JWTSecret:      get("JWT_SECRET", "dev-secret"),
		SessionTTL:     time.Duration(ttlHours) * time.Hour,
		RefreshSpec:    get("REFRESH_SPEC", "@every 5m"),
		JournalDSN:     get("JOURNAL_DSN", "file:farmconnect?mode=memory&cache=shared"),
		CatalogPath:    get("CATALOG_PATH", ""),
		EndpointsFile:  get("ENDPOINTS_FILE", ""),
		SimulatedDelay: dur("SIMULATED_DELAY", 1200*time.Millisecond),
		LogLevel:       strings.ToLower(get("LOG_LEVEL", "info")),
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	return cfg
}

// Level maps the configured level name onto gommon's levels.
func (c AppConfig) Level() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

// String masks the secret so the config can be logged at boot.
func (c AppConfig) String() string {
	type plain AppConfig
	masked := plain(c)
	if masked.JWTSecret != "" {
		masked.JWTSecret = "***"
	}
	return fmt.Sprintf("%+v", masked)
}
