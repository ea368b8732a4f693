// Package config provides configuration loading, merging, and validation
// facilities for the marketplace server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (including a bare positional port argument)
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
