// Package config provides configuration loading, merging, and validation
// facilities for the forum bridge.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the HTTP server and
// [GetSyncConfig] for the resync command.
package config
