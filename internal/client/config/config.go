package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the gophnotes CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - SessionFile: SQLite file remembering the bearer token per server.
//   - RequestTimeout: deadline applied to every RPC.
type Config struct {
	ServerEndpointAddr string
	SessionFile        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionFile = DefaultSessionFile()
	c.RequestTimeout = 10 * time.Second
}

// DefaultSessionFile returns $HOME/.gophnotes/session.db, or a path relative
// to the working directory when the home directory is unknown.
func DefaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".gophnotes", "session.db")
	}
	return filepath.Join(home, ".gophnotes", "session.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if present) and the environment. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	return cfg
}
