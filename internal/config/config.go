// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds listen addresses and HTTP policies of the service.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the key derivation pool settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the addresses the client uses to reach the service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds command line client behaviour.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command line arguments left after flag
	// parsing (the client reads its operation and text from them).
	Args []string `json:"-"`
}

// App holds application-level values.
type App struct {
	// Version is the semantic version reported by /api/info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and policy settings for the inbound transports.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC server in "host:port" form.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps the duration of a single HTTP request, including
	// the wait for a free derivation slot. Zero disables the cap.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists the origins allowed to call the API from a browser.
	// Empty allows every origin.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// RateLimit is the sustained number of encrypt/decrypt requests per
	// second accepted by the HTTP server. Zero disables limiting.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size of the rate limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Workers holds configuration of the key derivation pool.
type Workers struct {
	// DerivationPoolSize is the number of key derivations allowed to run at
	// once. Zero means one per CPU.
	// Env: WORKERS_DERIVATION_POOL_SIZE
	DerivationPoolSize int `env:"DERIVATION_POOL_SIZE"`
}

// Adapter holds the service endpoints used by the client.
type Adapter struct {
	// HTTPAddress is the base URL (or host:port) of the HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC API. When set it takes
	// precedence over HTTPAddress.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every client call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds command line client behaviour.
type Client struct {
	// Interactive runs the terminal form instead of reading arguments.
	// Env: CLIENT_INTERACTIVE
	Interactive bool `env:"INTERACTIVE"`

	// CopyToClipboard puts the result on the system clipboard.
	// Env: CLIENT_COPY
	CopyToClipboard bool `env:"COPY"`

	// Password skips the password prompt. Never printed or logged.
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD" json:"-"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
