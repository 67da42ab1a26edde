package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rlacademy/rl-academy/internal/colors"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv(EnvPrefix+"CONFIG_PATH", "")
	t.Setenv(EnvPrefix+"ENV_FILE", filepath.Join(tmp, "missing.env"))
	colors.SetOutput(os.Stdout, &discard{})
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return tmp
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
	require.Equal(t, "content.json", Get("content_primary", ""))
	require.Equal(t, "data/content.json", Get("content_fallback", ""))
	require.Equal(t, BackendJSON, Get("progress_backend", ""))
	require.Equal(t, "rlacademy.progress", Get("progress_namespace", ""))
	require.Equal(t, filepath.Join(tmp, "state", "rl-academy"), Get("state_dir", ""))
	require.Equal(t, 10, GetInt("fetch_timeout_seconds", 0))
	require.False(t, GetBool("logging_enabled", true))
}

func TestLoadCreatesSampleConfig(t *testing.T) {
	tmp := isolate(t)
	Load()

	data, err := os.ReadFile(filepath.Join(tmp, "config", "rl-academy", "config.toml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "# rl-academy configuration")
	require.Contains(t, string(data), "progress_backend")
}

func TestConfigLoadingPrecedence(t *testing.T) {
	tmp := isolate(t)
	configFile := filepath.Join(tmp, "custom.toml")
	content := `
progress_backend = "sqlite"
search_mode = "token"
fetch_timeout_seconds = 3
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv(EnvPrefix+"CONFIG_PATH", configFile)
	t.Setenv(EnvPrefix+"SEARCH_MODE", "substring")

	Load()

	require.Equal(t, "sqlite", Get("progress_backend", ""), "config file value should be used")
	require.Equal(t, "substring", Get("search_mode", ""), "environment should override config file")
	require.Equal(t, 3, GetInt("fetch_timeout_seconds", 0))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv(EnvPrefix+"PROGRESS_BACKEND", "postgres")
	t.Setenv(EnvPrefix+"FETCH_TIMEOUT_SECONDS", "-4")
	t.Setenv(EnvPrefix+"DEBUG", "maybe")
	t.Setenv(EnvPrefix+"QUIET", "YES")

	Load()

	require.Equal(t, BackendJSON, Get("progress_backend", ""))
	require.Equal(t, "10", Get("fetch_timeout_seconds", ""))
	require.Equal(t, "false", Get("debug", ""))
	require.Equal(t, "true", Get("quiet", ""))
}

func TestDotEnvFile(t *testing.T) {
	tmp := isolate(t)
	envFile := filepath.Join(tmp, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RL_ACADEMY_PROGRESS_NAMESPACE=from-dotenv\n"), 0644))
	t.Setenv(EnvPrefix+"ENV_FILE", envFile)
	t.Cleanup(func() { os.Unsetenv(EnvPrefix + "PROGRESS_NAMESPACE") })

	Load()

	require.Equal(t, "from-dotenv", Get("progress_namespace", ""))
}

func TestSetOverridesValue(t *testing.T) {
	isolate(t)
	Load()
	Set("content_primary", "other.json")
	require.Equal(t, "other.json", Get("content_primary", ""))
}

func TestEnumValidator(t *testing.T) {
	isolate(t)
	v := EnumValidator(map[string]bool{"a": true, "b": true})
	got, err := v("k", "B", "a")
	require.NoError(t, err)
	require.Equal(t, "b", got)

	got, err = v("k", "c", "a")
	require.NoError(t, err)
	require.Equal(t, "a", got)
}
