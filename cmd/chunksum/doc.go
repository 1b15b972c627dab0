// Package main hosts the chunksum CLI entrypoint and command graph.
//
// The root command fingerprints every path argument and writes one report
// line per file to stdout. Subcommands verify a saved report (check), scaffold
// and validate configuration (config) and print build information (version).
// Logs go to stderr so the report stream stays machine-readable.
package main
