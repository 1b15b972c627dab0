// Package manifest verifies files against a previously written text report.
//
// A manifest is the text output of a chunksum run: "<fingerprint>\t<path>"
// lines, possibly interleaved with "<path> : Access denied" lines, which are
// ignored. Each listed path is fingerprinted again and classified as OK,
// FAILED (content changed), DENIED (path no longer accessible) or ERROR
// (open or read failure).
package manifest
