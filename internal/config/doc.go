// Package config provides configuration loading, merging, and validation
// for the event-portal client.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file (path taken from CONFIG or -c/-config)
//
// The entry point is [GetClientConfig].
package config
