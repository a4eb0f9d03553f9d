package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderAPIKey is the value shown before the user has entered a real key
const PlaceholderAPIKey = "YOUR_API_KEY_HERE"

const (
	DefaultBaseURL        = "https://generativelanguage.googleapis.com"
	DefaultRequestTimeout = 60 * time.Second
)

type Config struct {
	APIKey      string `yaml:"api_key,omitempty"`
	RememberKey bool   `yaml:"remember_key"`
	Model       string `yaml:"model"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Category    string `yaml:"category,omitempty"`

	RequestTimeout Duration `yaml:"request_timeout,omitempty"`

	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`

	// values replaced by environment or flag overrides; these are what
	// gets saved, so overrides only last for the current run
	file overridden
}

type overridden struct {
	apiKey   *string
	model    *string
	baseURL  *string
	logLevel *string
	category *string
}

// override sets *field to v, remembering the first value it replaced
func override(orig **string, field *string, v string) {
	if *orig == nil {
		prev := *field
		*orig = &prev
	}
	*field = v
}

// restore puts back a remembered value, if any
func restore(orig *string, field *string) {
	if orig != nil {
		*field = *orig
	}
}

// Duration wraps time.Duration so it reads and writes as "60s" in YAML
type Duration time.Duration

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		RememberKey:    true,
		Model:          DefaultModel,
		BaseURL:        DefaultBaseURL,
		Category:       "tool",
		RequestTimeout: Duration(DefaultRequestTimeout),
		LogLevel:       "info",
	}
}

// Timeout returns the per-search deadline, falling back to the default
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(c.RequestTimeout)
}

// HasAPIKey reports whether a usable key is configured
func (c *Config) HasAPIKey() bool {
	key := strings.TrimSpace(c.APIKey)
	return key != "" && key != PlaceholderAPIKey
}

// SetAPIKey replaces the key with one entered by the user
func (c *Config) SetAPIKey(key string) {
	c.APIKey = strings.TrimSpace(key)
	c.file.apiKey = nil
}

// SetModel records a model chosen by the user; unlike an override it is saved
func (c *Config) SetModel(id string) {
	c.Model = id
	c.file.model = nil
}

// OverrideLogLevel changes the log level for this run only
func (c *Config) OverrideLogLevel(level string) {
	override(&c.file.logLevel, &c.LogLevel, level)
}

// OverrideCategory changes the startup category for this run only
func (c *Config) OverrideCategory(id string) {
	override(&c.file.category, &c.Category, id)
}

// ApplyEnv overrides fields from the environment (after .env has been
// loaded). Overridden values are never written back by Save.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		override(&c.file.apiKey, &c.APIKey, v)
	}
	if v := os.Getenv("FINDER_MODEL"); v != "" {
		override(&c.file.model, &c.Model, v)
	}
	if v := os.Getenv("FINDER_BASE_URL"); v != "" {
		override(&c.file.baseURL, &c.BaseURL, v)
	}
	if v := os.Getenv("FINDER_LOG_LEVEL"); v != "" {
		override(&c.file.logLevel, &c.LogLevel, v)
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "finder"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath returns the configured log file or the default inside ConfigDir
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "finder.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config from path. A missing file yields (nil, nil).
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config to path with owner-only permissions. Overridden
// fields keep their file values, and the API key is left out unless the user
// asked to remember it.
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	out := *c
	restore(c.file.apiKey, &out.APIKey)
	restore(c.file.model, &out.Model)
	restore(c.file.baseURL, &out.BaseURL)
	restore(c.file.logLevel, &out.LogLevel)
	restore(c.file.category, &out.Category)
	if !c.RememberKey {
		out.APIKey = ""
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
