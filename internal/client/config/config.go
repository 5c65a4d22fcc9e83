package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the auth CLI.
//
// Fields:
//   - ServerBaseURL: scheme://host:port of the auth server's HTTP API.
//   - RequestTimeout: upper bound for a single API call.
//   - LocalDBPath: SQLite file backing the secure store.
//   - KeyFilePath: device key sealing values in the secure store.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LocalDBPath    string
	KeyFilePath    string
}

// LoadDefaults populates c with sensible defaults. Local files live in the
// user's config directory, or the working directory if there is none.
func (c *Config) LoadDefaults() {
	dir := "."
	if base, err := os.UserConfigDir(); err == nil {
		dir = filepath.Join(base, "potholeauth")
	}

	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.LocalDBPath = filepath.Join(dir, "session.db")
	c.KeyFilePath = filepath.Join(dir, "session.key")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
