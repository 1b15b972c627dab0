// Package checksum implements the chunk accumulator behind chunksum
// fingerprints.
//
// The accumulator holds eight 32-bit lanes seeded from a fixed constant
// vector. Each 32-byte block is decoded as eight little-endian words and
// added lane by lane with wrapping arithmetic. There is no mixing between
// lanes, so the result is a plain running checksum: reordering whole blocks
// leaves the fingerprint unchanged and collisions are easy to construct.
// Keep it that way; existing manifests depend on the exact output.
//
// Primary entry points:
//   - New: seeded accumulator
//   - Accumulator.Fold / FoldBytes: add one block
//   - Accumulator.String / Parse: 64-character hex rendering and its inverse
package checksum
