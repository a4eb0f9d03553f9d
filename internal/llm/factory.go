package llm

import (
	"fmt"
	"net/url"

	"github.com/sant0-9/finder/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("invalid base_url %q: scheme must be http or https", cfg.BaseURL)
		}
	}

	return NewGeminiProvider(cfg.BaseURL, cfg.Model), nil
}
