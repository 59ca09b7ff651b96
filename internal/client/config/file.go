package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the CLI configuration. Only keys present
// in the file override the current Config.
type FileConfig struct {
	ServerEndpointAddr *string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	SessionFile        *string         `json:"session_file" yaml:"session_file"`
	RequestTimeout     *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// --config. Files ending in .yaml or .yml are decoded as YAML, anything else
// as JSON. Read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *fc.ServerEndpointAddr
	}
	if fc.SessionFile != nil {
		cfg.SessionFile = *fc.SessionFile
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
