package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"chunksum/internal/checksum"
	"chunksum/internal/fingerprint"
	"chunksum/internal/logging"
	"chunksum/internal/testsupport"
	"chunksum/internal/walker"
)

type nopSink struct{}

func (nopSink) Report(fingerprint.Report) error { return nil }
func (nopSink) Denied(string, error) error      { return nil }

type failingFingerprinter struct{ err error }

func (f failingFingerprinter) Fingerprint(context.Context, string) (fingerprint.Report, error) {
	return fingerprint.Report{}, f.err
}

func collect(t *testing.T, v *Verifier, entries []Entry) ([]Result, Summary) {
	t.Helper()
	var results []Result
	summary, err := v.Verify(context.Background(), entries, func(r Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results, summary
}

func TestVerifyClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	same := filepath.Join(dir, "a-same.bin")
	changed := filepath.Join(dir, "b-changed.bin")
	missing := filepath.Join(dir, "c-missing.bin")
	testsupport.WriteFile(t, same, 100)
	testsupport.WriteFile(t, changed, 64)

	rep, err := fingerprint.File(context.Background(), same, fingerprint.PaddingStale)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	seed := checksum.New().String()

	w := walker.New(nopSink{}, walker.Options{Jobs: 2, Logger: logging.NewNop()})
	v := NewVerifier(w, logging.NewNop())
	results, summary := collect(t, v, []Entry{
		{Fingerprint: rep.Fingerprint, Path: same},
		{Fingerprint: seed, Path: changed},
		{Fingerprint: seed, Path: missing},
	})

	want := []Status{StatusOK, StatusFailed, StatusDenied}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	for i, status := range want {
		if results[i].Status != status {
			t.Fatalf("%s: expected %s, got %s", results[i].Path, status, results[i].Status)
		}
	}
	if results[1].Actual == seed || results[1].Actual == "" {
		t.Fatalf("expected actual fingerprint for changed file, got %q", results[1].Actual)
	}
	if !errors.Is(results[2].Err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", results[2].Err)
	}
	if summary.OK != 1 || summary.Failed != 1 || summary.Denied != 1 || summary.Errors != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.Clean() {
		t.Fatal("summary with a failure must not be clean")
	}
}

func TestVerifyDeniedOnlyIsClean(t *testing.T) {
	v := NewVerifier(failingFingerprinter{}, logging.NewNop())
	_, summary := collect(t, v, []Entry{
		{Fingerprint: checksum.New().String(), Path: filepath.Join(t.TempDir(), "gone")},
	})
	if !summary.Clean() || summary.Denied != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestVerifyReportsReadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	testsupport.WriteFile(t, path, 32)
	cause := &os.PathError{Op: "read", Path: path, Err: errors.New("boom")}

	v := NewVerifier(failingFingerprinter{err: cause}, logging.NewNop())
	results, summary := collect(t, v, []Entry{{Fingerprint: checksum.New().String(), Path: path}})
	if results[0].Status != StatusError || !errors.Is(results[0].Err, cause) {
		t.Fatalf("unexpected result %+v", results[0])
	}
	if summary.Errors != 1 || summary.Clean() {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestVerifyStopsOnEmitError(t *testing.T) {
	dir := t.TempDir()
	entries := make([]Entry, 0, 4)
	for _, name := range []string{"a", "b", "c", "d"} {
		path := filepath.Join(dir, name)
		testsupport.WriteFile(t, path, 0)
		entries = append(entries, Entry{Fingerprint: checksum.New().String(), Path: path})
	}

	w := walker.New(nopSink{}, walker.Options{Logger: logging.NewNop()})
	emitErr := errors.New("stdout closed")
	_, err := NewVerifier(w, logging.NewNop()).Verify(context.Background(), entries, func(Result) error {
		return emitErr
	})
	if !errors.Is(err, emitErr) {
		t.Fatalf("expected emit error, got %v", err)
	}
}
