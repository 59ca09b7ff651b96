// Package config loads runtime configuration for the gophnotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected with -c / --config.
//  3. Environment variables (see parseEnv).
//
// Command-line flags are owned by the cobra root command, which uses the
// loaded Config as flag defaults, so flags take precedence over everything.
//
// # File schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_file": "/home/me/.gophnotes/session.db",
//	  "request_timeout": "10s"
//	}
package config
