// Package fingerprint computes chunksum fingerprints for individual files.
//
// A file is read in 32-byte blocks, strictly in order, and every non-empty
// block is folded into a private checksum.Accumulator. The rendered state is
// the file's fingerprint.
//
// Short final blocks follow a Padding policy:
//   - PaddingStale: the block buffer is reused without clearing, so the tail
//     of a short block carries bytes from the previous block. This matches
//     manifests written by earlier releases.
//   - PaddingZero: the tail of a short block is zeroed.
//
// Primary entry points:
//   - File: fingerprint one regular file
//   - Reader: fingerprint an arbitrary stream
package fingerprint
