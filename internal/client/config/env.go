package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. BLOGIFY_API_URL.
const EnvPrefix = "BLOGIFY_"

// parseEnv overlays cfg with BLOGIFY_* variables. Unset variables keep the
// current value. A malformed value (e.g. BLOGIFY_REQUEST_TIMEOUT=soon) panics.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
