// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are combined by a small builder: each source produces a partial
// [StructuredConfig], and mergo folds them together with earlier sources
// taking precedence for non-zero fields. The merged result is validated
// before use.
package config
