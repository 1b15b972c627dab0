// Package report is the single serialization point for walk results.
//
// A Writer implements walker.Sink. Each report or access-denied line is
// rendered in full and written with one Write call under a mutex, so lines
// from concurrent tasks never tear; no ordering between lines is imposed.
//
// Formats:
//   - text: "<fingerprint>\t<path>" and "<path> : Access denied"
//   - json: one JSON object per line
//   - table: rows are buffered and rendered, sorted by path, on Close
//
// OpenFile guards a report file with an advisory lock so two concurrent runs
// cannot interleave into the same manifest.
package report
