package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/blogify-auth/internal/xdg"
)

// DefaultAPIBaseURL is the public Blogify API.
const DefaultAPIBaseURL = "https://blogify-web-backend.vercel.app/api"

// Config holds runtime settings for the Blogify auth CLI.
//
// Fields:
//   - APIBaseURL: base URL of the auth API, including the /api prefix.
//   - RequestTimeout: upper bound for a single API call.
//   - SessionDBPath: SQLite file holding the session token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SessionDBPath  string        `env:"SESSION_DB"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = 15 * time.Second
	c.SessionDBPath = filepath.Join(xdg.StateDir(), "session.db")
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
