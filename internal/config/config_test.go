package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/gardenhelper/internal/garden"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GARDEN_CONFIG", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, ".gardenhelper", "gardenhelper.log"), cfg.Log.File)
	assert.Equal(t, "welcome", cfg.UI.StartScreen)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, garden.DefaultTimings(), cfg.Timings())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "garden.toml")
	body := `
[db]
path = "/tmp/garden.db"

[ui]
start_screen = "dashboard"

[timing]
toast = "500ms"
sensor_interval = "1m"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("GARDEN_CONFIG", path)
	t.Setenv("GARDEN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/garden.db", cfg.DB.Path)
	assert.Equal(t, "dashboard", cfg.UI.StartScreen)
	assert.Equal(t, "debug", cfg.Log.Level)

	timings := cfg.Timings()
	assert.Equal(t, 500*time.Millisecond, timings.Toast)
	assert.Equal(t, time.Minute, timings.SensorInterval)
	assert.Equal(t, 2*time.Second, timings.SetupDelay)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("GARDEN_CONFIG", filepath.Join(dir, "nope.toml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedDefaultFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "gardenhelper")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui\nstart_screen = "), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_DefaultFileIsRead(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "gardenhelper")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\nstart_screen = \"learning\"\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "learning", cfg.UI.StartScreen)
}
