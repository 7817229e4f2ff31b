package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)

	assert.Equal(t, Default(), LoadOrDefault(t.TempDir()))
}

func TestLoad_KeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dxfreader.yml"), []byte("codePage: ANSI_936\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.Failsafe)
	assert.Equal(t, "ANSI_936", cfg.CodePage)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_YAMLBeforeYML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dxfreader.yaml"), []byte("failsafe: false\nlogLevel: debug\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dxfreader.yml"), []byte("failsafe: true\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Failsafe)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("failsafe: [1, 2"))
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dxfreader.yaml"), []byte("failsafe: {"), 0644))
	assert.Equal(t, Default(), LoadOrDefault(dir))
}

func TestLevel_Unknown(t *testing.T) {
	cfg := &Configuration{LogLevel: "verbose"}
	assert.Equal(t, slog.LevelInfo, cfg.Level())

	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}
