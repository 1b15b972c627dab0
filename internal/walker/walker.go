package walker

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/semaphore"

	"chunksum/internal/fingerprint"
	"chunksum/internal/logging"
)

// Sink receives walk results. Implementations must be safe for concurrent
// use and must write each result as one indivisible unit.
type Sink interface {
	Report(fingerprint.Report) error
	Denied(path string, err error) error
}

// Options configures a Walker.
type Options struct {
	// Jobs bounds concurrent open files and directory listings. Zero means
	// unbounded; negative selects DefaultJobs.
	Jobs           int
	Padding        fingerprint.Padding
	FollowSymlinks bool
	FailFast       bool
	Logger         *slog.Logger
}

// DefaultJobs is the I/O gate width used when Options.Jobs is negative.
func DefaultJobs() int {
	return 4 * runtime.GOMAXPROCS(0)
}

// Walker fingerprints files below a set of roots.
type Walker struct {
	sink   Sink
	opts   Options
	gate   *semaphore.Weighted
	logger *slog.Logger
	stats  counters
}

// New constructs a Walker that reports to sink.
func New(sink Sink, opts Options) *Walker {
	if opts.Jobs < 0 {
		opts.Jobs = DefaultJobs()
	}
	w := &Walker{
		sink:   sink,
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "walker"),
	}
	if opts.Jobs > 0 {
		w.gate = semaphore.NewWeighted(int64(opts.Jobs))
	}
	return w
}

// Stats returns the counters accumulated so far.
func (w *Walker) Stats() Stats {
	return w.stats.snapshot()
}

// Run walks every root concurrently and joins them all. The returned error
// joins every fatal task failure; access-denied paths are not errors.
func (w *Walker) Run(ctx context.Context, roots []string) error {
	w.logger.Debug("walk started", logging.Int("roots", len(roots)), logging.Int("jobs", w.opts.Jobs))
	g := newGroup(ctx, w.opts.FailFast)
	for _, root := range roots {
		seen := newVisited()
		g.Go(root, func(ctx context.Context) error {
			return w.walk(ctx, root, seen, true)
		})
	}
	err := g.Wait()
	stats := w.Stats()
	w.logger.Debug("walk finished",
		logging.Int64("files", stats.Files),
		logging.Int64("directories", stats.Directories),
		logging.Int64("denied", stats.Denied),
		logging.Int64("failures", stats.Failures),
	)
	return err
}

// Fingerprint runs the file contract on a single path under the walker's
// gate. It is used by callers that already know the path they want, such
// as manifest verification.
func (w *Walker) Fingerprint(ctx context.Context, path string) (fingerprint.Report, error) {
	if err := w.acquire(ctx); err != nil {
		return fingerprint.Report{}, err
	}
	defer w.release()
	return fingerprint.File(ctx, path, w.opts.Padding)
}

// walk handles one path. Special files named directly as roots are read like
// regular files; below a root they are skipped.
func (w *Walker) walk(ctx context.Context, path string, seen *visited, root bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return w.deny(path, err)
	}
	if info.IsDir() {
		return w.walkDir(ctx, path, seen)
	}
	if !root && !info.Mode().IsRegular() {
		return w.skipSpecial(path, info.Mode())
	}
	if err := w.acquire(ctx); err != nil {
		return err
	}
	defer w.release()
	return w.fingerprintFile(ctx, path)
}

// walkEntry handles a directory entry that was listed as a regular file.
// The caller already holds a gate slot for it.
func (w *Walker) walkEntry(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return w.deny(path, err)
	}
	return w.fingerprintFile(ctx, path)
}

func (w *Walker) walkDir(ctx context.Context, dir string, seen *visited) error {
	if id, ok := identify(dir); ok && !seen.first(id) {
		w.stats.revisited.Add(1)
		w.logger.Debug("directory already visited", logging.String(logging.FieldPath, dir))
		return nil
	}
	w.stats.directories.Add(1)

	if err := w.acquire(ctx); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	w.release()
	if err != nil {
		return w.fail("readdir", dir, err)
	}

	g := newGroup(ctx, w.opts.FailFast)
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		mode := entry.Type()
		switch {
		case mode&fs.ModeSymlink != 0 && !w.opts.FollowSymlinks:
			w.stats.skipped.Add(1)
			w.logger.Debug("skipping symlink", logging.String(logging.FieldPath, child))
		case mode.IsRegular():
			// Take the slot before spawning so wide directories cannot
			// outrun the gate with idle goroutines.
			if err := w.acquire(g.ctx); err != nil {
				if waitErr := g.Wait(); waitErr != nil {
					return waitErr
				}
				return err
			}
			g.Go(child, func(ctx context.Context) error {
				defer w.release()
				return w.walkEntry(ctx, child)
			})
		default:
			g.Go(child, func(ctx context.Context) error {
				return w.walk(ctx, child, seen, false)
			})
		}
	}
	return g.Wait()
}

func (w *Walker) fingerprintFile(ctx context.Context, path string) error {
	rep, err := fingerprint.File(ctx, path, w.opts.Padding)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		op := "fingerprint"
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			op = pathErr.Op
			err = pathErr.Err
		}
		return w.fail(op, path, err)
	}
	w.stats.files.Add(1)
	w.stats.bytes.Add(rep.Size)
	if err := w.sink.Report(rep); err != nil {
		return w.fail("write", path, err)
	}
	return nil
}

func (w *Walker) deny(path string, cause error) error {
	w.stats.denied.Add(1)
	w.logger.Debug("path not accessible", logging.String(logging.FieldPath, path), logging.Error(cause))
	if err := w.sink.Denied(path, cause); err != nil {
		return w.fail("write", path, err)
	}
	return nil
}

func (w *Walker) skipSpecial(path string, mode fs.FileMode) error {
	w.stats.skipped.Add(1)
	w.logger.Debug("skipping special file", logging.String(logging.FieldPath, path), logging.String("mode", mode.String()))
	return nil
}

func (w *Walker) fail(op, path string, err error) error {
	w.stats.failures.Add(1)
	te := &TaskError{Op: op, Path: path, Err: err}
	w.logger.Error("task failed", logging.String("op", op), logging.String(logging.FieldPath, path), logging.Error(err))
	return te
}

func (w *Walker) acquire(ctx context.Context) error {
	if w.gate == nil {
		return nil
	}
	return w.gate.Acquire(ctx, 1)
}

func (w *Walker) release() {
	if w.gate != nil {
		w.gate.Release(1)
	}
}
