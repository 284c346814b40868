package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 720*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, "games.yaml", cfg.GamesConfigPath)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_EXPIRY", "5m")
	t.Setenv("JWT_REFRESH_EXPIRY", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "120")
	t.Setenv("LOG_RETENTION_DAYS", "-3")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 720*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 30, cfg.LogRetentionDays)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5433", DBSSLMode: "require"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5433 sslmode=require TimeZone=UTC", cfg.DSN())
}
