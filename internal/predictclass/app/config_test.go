package app

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
)

var goodSecret = strings.Repeat("x", 32)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", goodSecret)

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "predictclass", cfg.SessionIssuer)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.SessionTTL)
	require.Equal(t, httpx.DefaultSessionCookieName, cfg.SessionCookieName)
	require.Equal(t, "sqlite", cfg.DatabaseDriver)
	require.Equal(t, "linear-v1", cfg.ScoringPolicy)
	require.Equal(t, 50, cfg.JoinCodeMaxAttempts)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Equal(t, httpx.StrictLimit, cfg.StrictLimit)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", goodSecret)
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("DATABASE_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_URL", "postgres://localhost/predictclass")
	t.Setenv("JOIN_CODE_MAX_ATTEMPTS", "7")
	t.Setenv("HOUSEKEEPING_INTERVAL", "15")
	t.Setenv("PORT", "not-a-number")
	t.Setenv("RATELIMIT_STRICT_BURST", "99")

	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
	require.Equal(t, "postgres", cfg.DatabaseDriver)
	require.Equal(t, 7, cfg.JoinCodeMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.HousekeepingInterval)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 99, cfg.StrictLimit.Burst)
	require.Equal(t, httpx.StrictLimit.RequestsPerWindow, cfg.StrictLimit.RequestsPerWindow)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		SessionSecret:       goodSecret,
		SessionTTL:          time.Hour,
		DatabaseDriver:      "sqlite",
		ScoringPolicy:       "linear-v1",
		JoinCodeMaxAttempts: 50,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing secret", func(c *Config) { c.SessionSecret = "" }, "SESSION_SECRET is required"},
		{"short secret", func(c *Config) { c.SessionSecret = "short" }, "at least 32 bytes"},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }, "SESSION_TTL"},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }, "DATABASE_DRIVER"},
		{"postgres without url", func(c *Config) { c.DatabaseDriver = "postgres" }, "DATABASE_URL"},
		{"no attempts", func(c *Config) { c.JoinCodeMaxAttempts = 0 }, "JOIN_CODE_MAX_ATTEMPTS"},
		{"unknown policy", func(c *Config) { c.ScoringPolicy = "quadratic" }, "SCORING_POLICY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}
