// Package config provides configuration loading, merging, and validation
// for the go-tweet server and client.
//
// Configuration is assembled from multiple sources; a source only fills
// fields that higher-priority sources left empty:
//  1. Command-line flags
//  2. Environment variables (plus an optional .env file)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
