package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
)

type Config struct {
	SessionSecret     string        // Required: HS256 key for session tokens and the session cookie (>= 32 bytes)
	SessionIssuer     string        // Optional: iss claim (default: predictclass)
	SessionTTL        time.Duration // Optional: session lifetime (default: 12h)
	SessionCookieName string        // Optional: session cookie name (default: predictclass_session)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: SQLite database file (default: predictclass.db)
	DatabaseURL    string // Required for postgres: connection string
	PepperFile     string // Optional: pepper for password hashing (default: ./pepper)
	BootstrapToken string // Optional: if set, required to perform bootstrap

	ScoringPolicy       string // Optional: scoring policy name (default: linear-v1)
	JoinCodeMaxAttempts int    // Optional: join code allocation ceiling (default: 50)

	Env                  string        // Environment (dev, test, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	StrictLimit   httpx.RateLimitConfig // RATELIMIT_STRICT_*
	ModerateLimit httpx.RateLimitConfig // RATELIMIT_MODERATE_*
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory if there is one.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		SessionIssuer:     getEnvOrDefault("SESSION_ISSUER", "predictclass"),
		SessionTTL:        getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		SessionCookieName: getEnvOrDefault("SESSION_COOKIE_NAME", httpx.DefaultSessionCookieName),

		DatabaseDriver: strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", "sqlite")),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "predictclass.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		ScoringPolicy:       getEnvOrDefault("SCORING_POLICY", service.PolicyLinearV1),
		JoinCodeMaxAttempts: getEnvIntOrDefault("JOIN_CODE_MAX_ATTEMPTS", service.DefaultJoinCodeAttempts),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		StrictLimit:   httpx.RateLimitFromEnv("STRICT", httpx.StrictLimit),
		ModerateLimit: httpx.RateLimitFromEnv("MODERATE", httpx.ModerateLimit),
	}
}

// Validate reports the first setting the application cannot start with.
func (c Config) Validate() error {
	switch {
	case c.SessionSecret == "":
		return errors.New("SESSION_SECRET is required")
	case len(c.SessionSecret) < jwtx.MinSecretLength:
		return fmt.Errorf("SESSION_SECRET must be at least %d bytes", jwtx.MinSecretLength)
	case c.SessionTTL <= 0:
		return errors.New("SESSION_TTL must be positive")
	case c.DatabaseDriver != "sqlite" && c.DatabaseDriver != "postgres":
		return fmt.Errorf("DATABASE_DRIVER %q is not sqlite or postgres", c.DatabaseDriver)
	case c.DatabaseDriver == "postgres" && c.DatabaseURL == "":
		return errors.New("DATABASE_URL is required for the postgres driver")
	case c.JoinCodeMaxAttempts <= 0:
		return errors.New("JOIN_CODE_MAX_ATTEMPTS must be positive")
	}

	if _, err := service.PolicyByName(c.ScoringPolicy); err != nil {
		return fmt.Errorf("SCORING_POLICY: %w", err)
	}
	return nil
}

// revealResetTokens logs reset tokens in full outside production-like
// environments, where no mail delivery exists.
func (c Config) revealResetTokens() bool {
	return c.Env == "dev" || c.Env == "test"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
