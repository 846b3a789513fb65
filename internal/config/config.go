package config

import (
	"awty-football/internal/constants"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	CORSAllowedOrigins []string

	GoogleClientID string
	AdminEmails    []string
	SessionTTL     time.Duration

	AutosaveDelay      time.Duration
	AutosaveMaxRetries int

	SheetsSpreadsheetID string
	SheetsAccessToken   string
	SheetsRange         string

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}
	return FromEnv(os.Getenv, logger)
}

// FromEnv builds the config from a lookup function so it can be exercised
// without touching the process environment.
func FromEnv(getenv func(string) string, logger zerolog.Logger) (*Config, error) {
	env := envReader{getenv: getenv}

	cfg := &Config{
		DBPath:              env.str("DB_PATH", "awty.db"),
		ServerPort:          env.str("SERVER_PORT", "8080"),
		LogLevel:            env.str("LOG_LEVEL", "info"),
		CORSAllowedOrigins:  env.list("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		GoogleClientID:      env.str("GOOGLE_CLIENT_ID", ""),
		AdminEmails:         env.list("ADMIN_EMAILS", nil),
		SessionTTL:          env.duration("SESSION_TTL", constants.SessionTTL),
		AutosaveDelay:       env.duration("AUTOSAVE_DELAY", constants.AutosaveDelay),
		AutosaveMaxRetries:  env.integer("AUTOSAVE_MAX_RETRIES", constants.AutosaveMaxRetries),
		SheetsSpreadsheetID: env.str("SHEETS_SPREADSHEET_ID", ""),
		SheetsAccessToken:   env.str("SHEETS_ACCESS_TOKEN", ""),
		SheetsRange:         env.str("SHEETS_RANGE", "Games!A1"),
		RateLimitRequests:   env.integer("RATE_LIMIT_REQUESTS", 30),
		RateLimitWindow:     env.duration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if env.err != nil {
		return nil, env.err
	}
	if cfg.AutosaveMaxRetries < 0 {
		return nil, fmt.Errorf("AUTOSAVE_MAX_RETRIES must not be negative")
	}
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	for i, email := range cfg.AdminEmails {
		cfg.AdminEmails[i] = strings.ToLower(email)
	}

	if cfg.GoogleClientID == "" {
		logger.Warn().Msg("GOOGLE_CLIENT_ID not set, sign-in is disabled")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Strs("cors_origins", cfg.CORSAllowedOrigins).
		Int("admin_count", len(cfg.AdminEmails)).
		Dur("autosave_delay", cfg.AutosaveDelay).
		Bool("sheets_enabled", cfg.SheetsEnabled()).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) SheetsEnabled() bool {
	return c.SheetsSpreadsheetID != "" && c.SheetsAccessToken != ""
}

func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) list(key string, fallback []string) []string {
	v := e.getenv(key)
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (e *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: %w", key, v, err))
		return fallback
	}
	return d
}

func (e *envReader) integer(key string, fallback int) int {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(fmt.Errorf("invalid %s %q: %w", key, v, err))
		return fallback
	}
	return n
}

func (e *envReader) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}
