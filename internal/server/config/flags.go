package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophnotes/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-t duration   token validity (e.g., "24h", "90s")
//	-m string     mode: development | production
//	-b int        bcrypt cost
//
// Only these flags are picked out of os.Args, so the -c/-config flag and any
// other arguments never reach this flag set.
func parseFlags(config *Config) error {
	args := flagx.Pick(os.Args[1:], "a", "d", "s", "t", "m", "b")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.TokenValidityDuration, "t", config.TokenValidityDuration, "token validity duration")
	fs.StringVar(&config.Mode, "m", config.Mode, "mode (development|production)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
