// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the user directory
// server. It is populated by merging values from a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout, CORS and rate-limit settings of the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds settings of the in-memory user repository.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins enables CORS for the listed origins when non-empty.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// RateLimitRPS is the steady per-client request rate. Zero disables
	// rate limiting.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-client burst size.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Storage groups the configuration of the repositories.
type Storage struct {
	// Memory holds the in-memory repository settings.
	Memory Memory `envPrefix:"MEMORY_"`
}

// Memory holds settings of the in-memory user repository.
type Memory struct {
	// Shards is the number of independently locked map shards.
	// Env: STORAGE_MEMORY_SHARDS
	Shards int `env:"SHARDS"`

	// SkipDemoSeed starts the repository empty instead of preloading the two
	// demo users (ids 1 and 2).
	// Env: STORAGE_MEMORY_SKIP_DEMO_SEED
	SkipDemoSeed bool `env:"SKIP_DEMO_SEED"`
}

// Defaults applied to fields left empty by every source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultShards          = 16
)

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. .env file in the working directory (never overrides the process env)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Storage.Memory.Shards == 0 {
		cfg.Storage.Memory.Shards = DefaultShards
	}
	if cfg.Server.RateLimitRPS > 0 && cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = int(cfg.Server.RateLimitRPS) + 1
	}
}
