package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finder", "config.yaml")

	cfg := DefaultConfig()
	cfg.APIKey = "abc123"
	cfg.Model = "gemini-1.5-pro"
	cfg.Category = "business"
	cfg.RequestTimeout = Duration(90 * time.Second)
	require.NoError(t, cfg.SaveFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "request_timeout: 1m30s")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: gemini-1.5-flash\n"), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout())
}

func TestLoadFileRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout: soon\n"), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestHasAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "", want: false},
		{key: "   ", want: false},
		{key: PlaceholderAPIKey, want: false},
		{key: "real-key", want: true},
	}

	for _, tt := range tests {
		cfg := &Config{APIKey: tt.key}
		assert.Equal(t, tt.want, cfg.HasAPIKey(), "key %q", tt.key)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("FINDER_MODEL", "gemini-1.5-pro")
	t.Setenv("FINDER_BASE_URL", "http://localhost:9999")
	t.Setenv("FINDER_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSaveFileOmitsKeyWhenNotRemembered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.SetAPIKey("secret")
	cfg.RememberKey = false
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.APIKey)
	assert.False(t, loaded.RememberKey)
}

func TestSaveFileOmitsKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-secret")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	require.NoError(t, cfg.SaveFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "env-secret")

	cfg.SetAPIKey(" typed-key ")
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "typed-key", loaded.APIKey)
}

func TestSaveFileKeepsFileValuesUnderOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	orig := DefaultConfig()
	orig.APIKey = "stored-key"
	orig.Model = "gemini-1.5-flash"
	orig.BaseURL = "https://example.test"
	orig.LogLevel = "warn"
	orig.Category = "business"
	require.NoError(t, orig.SaveFile(path))

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("FINDER_MODEL", "gemini-1.5-pro")
	t.Setenv("FINDER_BASE_URL", "http://localhost:9999")
	t.Setenv("FINDER_LOG_LEVEL", "debug")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	cfg.ApplyEnv()
	cfg.OverrideLogLevel("error")
	cfg.OverrideCategory("service")

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "service", cfg.Category)

	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "stored-key", loaded.APIKey)
	assert.Equal(t, "gemini-1.5-flash", loaded.Model)
	assert.Equal(t, "https://example.test", loaded.BaseURL)
	assert.Equal(t, "warn", loaded.LogLevel)
	assert.Equal(t, "business", loaded.Category)
}

func TestSetModelIsSavedOverEnvOverride(t *testing.T) {
	t.Setenv("FINDER_MODEL", "gemini-1.5-pro")
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, loaded.Model)

	cfg.SetModel("gemini-2.0-flash-lite")
	require.NoError(t, cfg.SaveFile(path))

	loaded, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash-lite", loaded.Model)
}

func TestTimeoutFallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout())

	cfg.RequestTimeout = Duration(5 * time.Second)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestGetModel(t *testing.T) {
	m := GetModel(DefaultModel)
	require.NotNil(t, m)
	assert.Equal(t, "Gemini 2.0 Flash", m.Name)
	assert.Nil(t, GetModel("gpt-4o"))
	assert.Equal(t, 3, ModelIndex("gemini-1.5-pro"))
	assert.Equal(t, 0, ModelIndex("missing"))
}
