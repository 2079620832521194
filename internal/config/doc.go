// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo, which only fills fields still at their zero value, so earlier
// sources take precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the validated client configuration.
package config
