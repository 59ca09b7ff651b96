package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// parseEnv overlays values from environment variables. Unset or empty
// variables leave the current value alone; an unparsable duration or
// integer is an error.
//
//	GRPC_ADDRESS    bind address (PORT is accepted as a bare port fallback)
//	DATABASE_URL    PostgreSQL DSN
//	JWT_SECRET      token signing secret
//	JWT_EXPIRY      token lifetime, Go duration syntax
//	APP_ENV         development | production
//	BCRYPT_COST     password hashing cost
//	ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD  admin seed
func parseEnv(config *Config) error {
	if port := env("PORT"); port != "" {
		config.EndpointAddrGRPC = ":" + port
	}
	if addr := env("GRPC_ADDRESS"); addr != "" {
		config.EndpointAddrGRPC = addr
	}
	if dsn := env("DATABASE_URL"); dsn != "" {
		config.DatabaseDSN = dsn
	}
	if secret := env("JWT_SECRET"); secret != "" {
		config.SecretKey = secret
	}
	if raw := env("JWT_EXPIRY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: JWT_EXPIRY: %w", ErrInvalidConfig, err)
		}
		config.TokenValidityDuration = d
	}
	if mode := env("APP_ENV"); mode != "" {
		config.Mode = strings.ToLower(mode)
	}
	if raw := env("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: BCRYPT_COST: %w", ErrInvalidConfig, err)
		}
		config.BcryptCost = cost
	}
	if name := env("ADMIN_NAME"); name != "" {
		config.AdminName = name
	}
	if email := env("ADMIN_EMAIL"); email != "" {
		config.AdminEmail = email
	}
	if password := env("ADMIN_PASSWORD"); password != "" {
		config.AdminPassword = password
	}
	return nil
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
