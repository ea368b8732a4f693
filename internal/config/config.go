// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Default values applied after all configuration sources are merged.
const (
	// DefaultPort is the TCP port the marketplace server listens on when no
	// port is supplied by any configuration source.
	DefaultPort = 8080

	// DefaultSnapshotPath is the file the store snapshot is written to when
	// no path is supplied by any configuration source.
	DefaultSnapshotPath = "marketplace_data.json"
)

// StructuredConfig is the top-level configuration container for the
// go-marketplace server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds the listening port for the TCP acceptor.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the snapshot persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Printed at startup.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network settings for the inbound TCP transport.
type Server struct {
	// Port is the TCP port the connection acceptor binds to.
	// Env: SERVER_PORT
	Port int `env:"PORT"`
}

// Storage groups the configuration for the persistence backends used by the
// application.
type Storage struct {
	// Files holds the file-system settings for the state snapshot.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the snapshot store.
type Files struct {
	// SnapshotPath is the path of the file the full marketplace state is
	// serialized to after every mutating command.
	// Env: STORAGE_FILES_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults (port 8080, snapshot path "marketplace_data.json") are applied to
// any field still unset after the merge.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills any field still at its zero value after the merge.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}

	if cfg.Storage.Files.SnapshotPath == "" {
		cfg.Storage.Files.SnapshotPath = DefaultSnapshotPath
	}
}
