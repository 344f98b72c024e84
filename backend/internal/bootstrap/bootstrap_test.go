package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("app:\n  log_level: warn\n"), 0o600))

	cfg, log, err := Load(dir, "")
	require.NoError(t, err)
	require.NotNil(t, log)
	require.Equal(t, "warn", cfg.App.LogLevel)

	cfg, _, err = Load(dir, "debug")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.App.LogLevel)

	require.NotNil(t, NewCollector(cfg, log))
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("app:\n  port: -1\n"), 0o600))

	_, _, err := Load(dir, "")
	require.Error(t, err)
}

func TestLoadConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("app:\n  log_level: error\n"), 0o600))
	t.Setenv("CONFIG_DIR", dir)

	cfg, _, err := Load("", "")
	require.NoError(t, err)
	require.Equal(t, "error", cfg.App.LogLevel)
}

func TestLoadConfigDirFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte("app:\n  log_level: warn\n"), 0o600))

	work := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte("CONFIG_DIR="+dir+"\n"), 0o600))
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prev) })

	// godotenv never overrides a variable that is already set.
	t.Setenv("CONFIG_DIR", "")
	require.NoError(t, os.Unsetenv("CONFIG_DIR"))

	cfg, _, err := Load("", "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.App.LogLevel)
}
