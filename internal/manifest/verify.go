package manifest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"chunksum/internal/fingerprint"
	"chunksum/internal/logging"
)

// Status classifies one verified entry.
type Status int

const (
	StatusOK Status = iota
	StatusFailed
	StatusDenied
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusFailed:
		return "FAILED"
	case StatusDenied:
		return "DENIED"
	default:
		return "ERROR"
	}
}

// Result is the verdict for one entry.
type Result struct {
	Entry
	Status Status
	Actual string
	Err    error
}

// Summary counts verdicts.
type Summary struct {
	OK     int64
	Failed int64
	Denied int64
	Errors int64
}

// Clean reports whether every entry verified or was merely inaccessible.
func (s Summary) Clean() bool {
	return s.Failed == 0 && s.Errors == 0
}

// Fingerprinter fingerprints one file. *walker.Walker satisfies it.
type Fingerprinter interface {
	Fingerprint(ctx context.Context, path string) (fingerprint.Report, error)
}

// Verifier re-fingerprints manifest entries concurrently.
type Verifier struct {
	fp     Fingerprinter
	logger *slog.Logger
}

// NewVerifier returns a Verifier using fp.
func NewVerifier(fp Fingerprinter, logger *slog.Logger) *Verifier {
	return &Verifier{fp: fp, logger: logging.NewComponentLogger(logger, "manifest")}
}

// Verify checks every entry and passes each result to emit as soon as it
// is known. emit is never called concurrently. An emit error stops the run
// and is returned.
func (v *Verifier) Verify(ctx context.Context, entries []Entry, emit func(Result) error) (Summary, error) {
	var (
		mu      sync.Mutex
		summary struct{ ok, failed, denied, errs atomic.Int64 }
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		g.Go(func() error {
			res := v.check(gctx, entry)
			switch res.Status {
			case StatusOK:
				summary.ok.Add(1)
			case StatusFailed:
				summary.failed.Add(1)
			case StatusDenied:
				summary.denied.Add(1)
			default:
				summary.errs.Add(1)
			}
			mu.Lock()
			defer mu.Unlock()
			return emit(res)
		})
	}
	err := g.Wait()
	return Summary{
		OK:     summary.ok.Load(),
		Failed: summary.failed.Load(),
		Denied: summary.denied.Load(),
		Errors: summary.errs.Load(),
	}, err
}

func (v *Verifier) check(ctx context.Context, entry Entry) Result {
	if _, err := os.Stat(entry.Path); err != nil {
		v.logger.Debug("manifest path not accessible", logging.String(logging.FieldPath, entry.Path), logging.Error(err))
		return Result{Entry: entry, Status: StatusDenied, Err: err}
	}
	rep, err := v.fp.Fingerprint(ctx, entry.Path)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			op := "fingerprint"
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				op = pathErr.Op
			}
			v.logger.Error("verification failed", logging.String("op", op), logging.String(logging.FieldPath, entry.Path), logging.Error(err))
		}
		return Result{Entry: entry, Status: StatusError, Err: err}
	}
	if rep.Fingerprint != entry.Fingerprint {
		return Result{Entry: entry, Status: StatusFailed, Actual: rep.Fingerprint}
	}
	return Result{Entry: entry, Status: StatusOK, Actual: rep.Fingerprint}
}
