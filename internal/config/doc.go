// Package config loads, normalizes, and validates chunksum configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. A missing configuration file is not an
// error: the defaults reproduce the behaviour of a bare invocation.
//
// Always obtain settings through this package so downstream code receives
// canonical values and clear validation errors.
package config
