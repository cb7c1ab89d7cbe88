package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Mindful CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST collaborator.
//   - GeminiAPIKey: key forwarded to the collaborator and used by the local
//     AI generator. Empty means AI features are unavailable until set.
//   - RefetchInterval: how often the background watcher re-pulls every
//     collection from the collaborator.
//   - CacheDSN: sqlite DSN of the local snapshot cache.
type Config struct {
	ServerURL       string
	GeminiAPIKey    string
	RefetchInterval time.Duration
	CacheDSN        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RefetchInterval = 5 * time.Minute
	c.CacheDSN = "mindful.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
