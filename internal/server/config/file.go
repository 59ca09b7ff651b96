package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
	"github.com/dmitrijs2005/gophnotes/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations use
// timex.Duration, so both "1s" strings and integer nanoseconds are accepted.
// Pointer fields distinguish "absent" from zero values: only keys present
// in the file override the current Config.
type FileConfig struct {
	EndpointAddrGRPC      *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN           *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey             *string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	Mode                  *string         `json:"mode" yaml:"mode"`
	BcryptCost            *int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	AdminName             *string         `json:"admin_name" yaml:"admin_name"`
	AdminEmail            *string         `json:"admin_email" yaml:"admin_email"`
	AdminPassword         *string         `json:"admin_password" yaml:"admin_password"`
}

// parseFile loads configuration values from the file named by the -c or
// -config flag. Files ending in .yaml or .yml are decoded as YAML, anything
// else as JSON. Without the flag nothing is loaded. An unreadable or invalid
// file is an error.
func parseFile(config *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read config file: %w", ErrInvalidConfig, err)
	}

	c := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}

	c.apply(config)
	return nil
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	setString(&config.Mode, c.Mode)
	if c.BcryptCost != nil {
		config.BcryptCost = *c.BcryptCost
	}
	setString(&config.AdminName, c.AdminName)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
