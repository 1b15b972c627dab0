// Package logging assembles the structured slog loggers used by chunksum.
//
// It owns the console and JSON handlers and the level and output plumbing,
// and provides attribute helpers so every component tags its lines the same
// way. Log output goes to stderr by default so stdout stays a clean report
// stream. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
