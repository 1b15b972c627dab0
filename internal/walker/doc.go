// Package walker fans chunksum fingerprinting out across directory trees.
//
// Every top-level path, every directory and every file gets its own
// goroutine. Parents always join their children before returning, so task
// lifetimes form a tree that mirrors the directory tree and failures travel
// upward through each join point.
//
// Two kinds of failure are distinguished:
//   - soft: a path whose stat fails is reported to the Sink as access denied
//     and the walk carries on
//   - fatal: open, read and directory-listing failures of already classified
//     entries, sink write failures and panicking tasks become *TaskError and
//     fail the run
//
// Open files and directory listings are gated by a weighted semaphore sized
// by Options.Jobs. The gate is held only around I/O and never across a join,
// so deep trees cannot starve themselves. Jobs == 0 removes the gate.
//
// Directories are identified by device and inode where the platform allows
// it; each top-level root keeps its own visited set so symlink cycles
// terminate.
package walker
