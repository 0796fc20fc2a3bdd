package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithDefaults(t *testing.T) {
	log, err := New(&Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("started", "component", "test")
}

func TestNewWithFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.log")
	log, err := New(&Config{Level: InfoLevel, Encoding: "json", OutputPath: path})
	require.NoError(t, err)
	log.Info("written to file")

	assert.FileExists(t, path)
}

func TestNewWithBadOutputPath(t *testing.T) {
	_, err := New(&Config{OutputPath: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutputPath)
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, getLogLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, getLogLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, getLogLevel("unknown"))
}

func TestWithComponent(t *testing.T) {
	log, err := New(&Config{})
	require.NoError(t, err)
	child := log.WithComponent("frontier")
	require.NotNil(t, child)
	child.Debug("scoped")
}
