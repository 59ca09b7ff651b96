package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays values from environment variables. Unset variables and
// unparsable durations leave the current value alone.
//
//	GOPHNOTES_ADDR          server address
//	GOPHNOTES_SESSION_FILE  session store path
//	GOPHNOTES_TIMEOUT       per-request timeout, Go duration syntax
func parseEnv(cfg *Config) {
	if addr := strings.TrimSpace(os.Getenv("GOPHNOTES_ADDR")); addr != "" {
		cfg.ServerEndpointAddr = addr
	}
	if path := strings.TrimSpace(os.Getenv("GOPHNOTES_SESSION_FILE")); path != "" {
		cfg.SessionFile = path
	}
	if raw := strings.TrimSpace(os.Getenv("GOPHNOTES_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
