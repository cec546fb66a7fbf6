package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/01moynul/eshop-catalog-golang/internal/config"
)

func TestNew_ConsoleOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.Level = "debug"

	log, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logger.Level = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_WritesErrorsToSeparateFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Logger.FileEnable = true
	cfg.Logger.Dir = dir

	log, err := New(cfg)
	require.NoError(t, err)

	log.Info("catalog started")
	log.Error("catalog failed")
	_ = log.Sync()

	all, err := os.ReadFile(filepath.Join(dir, "all.log"))
	require.NoError(t, err)
	assert.Contains(t, string(all), "catalog started")
	assert.Contains(t, string(all), "catalog failed")

	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(errs), "catalog started")
	assert.Contains(t, string(errs), "catalog failed")
}
