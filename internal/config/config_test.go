package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 16, cfg.Scheduler.Concurrency)
	assert.Equal(t, 0.8, cfg.Pacing.DefaultThrottle)
	assert.Equal(t, 3, cfg.Anomaly.Threshold)
	assert.Equal(t, configs.SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, "campaign_budget_changed", cfg.Psql.NotifyChannel)
	assert.False(t, cfg.Redis.PublishDecisions)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SCHEDULER_INTERVAL", "30s")
	t.Setenv("ANOMALY_HOLD", "1h")
	t.Setenv("CONFIG_SOURCE", "file")
	t.Setenv("CONFIG_FILE", "/etc/pacing/budgets.yaml")
	t.Setenv("REDIS_PUBLISH_DECISIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, time.Hour, cfg.Anomaly.Hold)
	assert.Equal(t, configs.SourceFile, cfg.Source.Kind)
	assert.Equal(t, "/etc/pacing/budgets.yaml", cfg.Source.Path)
	assert.True(t, cfg.Redis.PublishDecisions)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SCHEDULER_CONCURRENCY", "0")
	t.Setenv("CONFIG_SOURCE", "consul")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "SCHEDULER_CONCURRENCY")
	assert.ErrorContains(t, err, "CONFIG_SOURCE")
}

func TestLoggerConfig(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
}
