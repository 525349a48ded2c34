// Package config loads and validates the graph-plus-options configuration
// the pcst CLI needs, Viper-backed so the same configuration can be written
// as YAML, JSON or TOML. Environment variables are not consulted.
package config
