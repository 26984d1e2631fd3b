// Package config provides configuration loading, merging, and validation
// facilities for the user directory server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry point is [GetStructuredConfig].
package config
