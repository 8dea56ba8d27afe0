package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "jobmatch", cfg.App.AppName)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 20, cfg.Matching.RecommendationLimit)
	assert.Equal(t, 200, cfg.Matching.CandidatePoolSize)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("REDIS_TTL", "30")
	t.Setenv("MATCH_WORKERS", "4")
	t.Setenv("MATCH_WEIGHTS_FILE", "/etc/jobmatch/weights.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 4, cfg.Matching.Workers)
	assert.Equal(t, "/etc/jobmatch/weights.yaml", cfg.Matching.WeightsFile)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_InvalidNumber(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MATCH_WORKERS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInvalidEnv))
	assert.Contains(t, err.Error(), "MATCH_WORKERS")
}

func TestLoad_Flags(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_RUN_MIGRATIONS", "false")
	t.Setenv("DB_RUN_SEEDERS", "true")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Database.RunMigrations)
	assert.True(t, cfg.Database.RunSeeders)
	assert.Equal(t, time.Minute, cfg.JWT.AccessExpiresIn)

	t.Setenv("DB_RUN_SEEDERS", "sometimes")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_RUN_SEEDERS")
}
