package main

import (
	"bytes"
	"flag"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/app"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	return logger, &buf
}

func TestPrepareDefaults(t *testing.T) {
	logger, _ := newTestLogger()
	var out bytes.Buffer

	cfg, err := prepare(nil, env(nil), logger, &out)

	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	assert.Empty(t, out.String())
}

func TestPrepareAppliesLoggingSettings(t *testing.T) {
	logger, _ := newTestLogger()

	_, err := prepare(nil, env(map[string]string{
		"STOREFRONT_LOG_LEVEL":  "debug",
		"STOREFRONT_LOG_FORMAT": "json",
	}), logger, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, logger.Formatter)
}

func TestPrepareLogsIgnoredValues(t *testing.T) {
	logger, logs := newTestLogger()

	cfg, err := prepare(nil, env(map[string]string{
		"STOREFRONT_OUTBOX_BATCH_SIZE": "lots",
	}), logger, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig().OutboxBatchSize, cfg.OutboxBatchSize)
	assert.Contains(t, logs.String(), "STOREFRONT_OUTBOX_BATCH_SIZE")
}

func TestPrepareRejectsInvalidConfig(t *testing.T) {
	logger, _ := newTestLogger()

	_, err := prepare(nil, env(map[string]string{
		"STOREFRONT_STORAGE_DRIVER": "postgres",
	}), logger, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres dsn is required")
}

func TestPrepareCheckConfig(t *testing.T) {
	logger, _ := newTestLogger()
	var out bytes.Buffer

	_, err := prepare([]string{"-check-config"}, env(map[string]string{
		"STOREFRONT_REDIS_ADDR": "localhost:6379",
	}), logger, &out)

	assert.ErrorIs(t, err, errConfigChecked)
	assert.Equal(t, "config ok: storage=memory grpc=:50051 metrics=:9090 redis=true kafka=false\n", out.String())
}

func TestPrepareVersion(t *testing.T) {
	logger, _ := newTestLogger()
	var out bytes.Buffer

	_, err := prepare([]string{"-version"}, env(nil), logger, &out)

	assert.ErrorIs(t, err, errConfigChecked)
	assert.Equal(t, version.GetFullVersion()+"\n", out.String())
}

func TestPrepareHelpAndUnknownFlags(t *testing.T) {
	logger, _ := newTestLogger()

	_, err := prepare([]string{"-h"}, env(nil), logger, &bytes.Buffer{})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = prepare([]string{"-bogus"}, env(nil), logger, &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, flag.ErrHelp)
}
