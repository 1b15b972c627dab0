package fingerprint

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"chunksum/internal/checksum"
	"chunksum/internal/testsupport"
)

const seedHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestFileEmptyIsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	testsupport.WriteFile(t, path, 0)

	for _, padding := range []Padding{PaddingStale, PaddingZero} {
		rep, err := File(context.Background(), path, padding)
		if err != nil {
			t.Fatalf("File(%s): %v", padding, err)
		}
		if rep.Fingerprint != seedHex {
			t.Fatalf("padding %s: unexpected fingerprint %s", padding, rep.Fingerprint)
		}
		if rep.Blocks != 0 || rep.Size != 0 {
			t.Fatalf("expected no blocks for empty file, got %+v", rep)
		}
		if rep.Path != path {
			t.Fatalf("unexpected path %q", rep.Path)
		}
	}
}

func TestFileMatchesManualFold(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789abcdefghijklmnopqrstuv"), 5000)
	path := filepath.Join(t.TempDir(), "data.bin")
	testsupport.WriteBytes(t, path, content)

	acc := checksum.New()
	for off := 0; off < len(content); off += checksum.BlockSize {
		acc.FoldBytes(content[off : off+checksum.BlockSize])
	}

	rep, err := File(context.Background(), path, PaddingStale)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if rep.Fingerprint != acc.String() {
		t.Fatalf("fingerprint mismatch: got %s want %s", rep.Fingerprint, acc.String())
	}
	if rep.Size != int64(len(content)) || rep.Blocks != 5000 {
		t.Fatalf("unexpected counters %+v", rep)
	}
}

func TestFileIsDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pattern")
	testsupport.WriteFile(t, path, 100_003)

	first, err := File(context.Background(), path, PaddingStale)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := File(context.Background(), path, PaddingStale)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.Fingerprint != second.Fingerprint {
		t.Fatalf("fingerprint changed between runs: %s vs %s", first.Fingerprint, second.Fingerprint)
	}
}

func TestShortFinalBlockPadding(t *testing.T) {
	first := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ012345")
	tail := []byte("tail")
	content := append(append([]byte{}, first...), tail...)

	stale := checksum.New()
	stale.FoldBytes(first)
	staleBlock := append([]byte{}, first...)
	copy(staleBlock, tail)
	stale.FoldBytes(staleBlock)

	zero := checksum.New()
	zero.FoldBytes(first)
	zeroBlock := make([]byte, checksum.BlockSize)
	copy(zeroBlock, tail)
	zero.FoldBytes(zeroBlock)

	tests := []struct {
		name    string
		padding Padding
		want    string
	}{
		{name: "stale", padding: PaddingStale, want: stale.String()},
		{name: "zero", padding: PaddingZero, want: zero.String()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, size, err := Reader(bytes.NewReader(content), tc.padding)
			if err != nil {
				t.Fatalf("Reader: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
			if size != int64(len(content)) {
				t.Fatalf("unexpected size %d", size)
			}
		})
	}
	if stale.String() == zero.String() {
		t.Fatal("test content should distinguish padding policies")
	}
}

func TestSingleShortBlockUsesZeroedBuffer(t *testing.T) {
	staleFP, _, err := Reader(strings.NewReader("hello"), PaddingStale)
	if err != nil {
		t.Fatalf("stale: %v", err)
	}
	zeroFP, _, err := Reader(strings.NewReader("hello"), PaddingZero)
	if err != nil {
		t.Fatalf("zero: %v", err)
	}
	if staleFP != zeroFP {
		t.Fatalf("a lone short block has no stale bytes: %s vs %s", staleFP, zeroFP)
	}
}

// oneByteReader returns at most one byte per Read call.
type oneByteReader struct{ r io.Reader }

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestReaderCoalescesShortReads(t *testing.T) {
	content := bytes.Repeat([]byte{0x5a, 0x01, 0xff}, 50)
	want, _, err := Reader(bytes.NewReader(content), PaddingStale)
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	got, _, err := Reader(oneByteReader{bytes.NewReader(content)}, PaddingStale)
	if err != nil {
		t.Fatalf("Reader(one byte): %v", err)
	}
	if got != want {
		t.Fatalf("short reads changed the fingerprint: %s vs %s", got, want)
	}
}

type failingReader struct{ after int }

var errBoom = errors.New("boom")

func (f *failingReader) Read(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errBoom
	}
	n := len(p)
	if n > f.after {
		n = f.after
	}
	f.after -= n
	return n, nil
}

func TestReaderPropagatesReadErrors(t *testing.T) {
	_, _, err := Reader(&failingReader{after: 40}, PaddingStale)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestFileOpenErrorIsPathError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := File(context.Background(), missing, PaddingStale)
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Op != "open" {
		t.Fatalf("expected open PathError, got %v", err)
	}
}

func TestFileReadErrorOnDirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := File(context.Background(), dir, PaddingStale)
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected PathError, got %v", err)
	}
}

func TestFileHonoursCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	testsupport.WriteFile(t, path, 64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := File(ctx, path, PaddingStale); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParsePadding(t *testing.T) {
	for input, want := range map[string]Padding{"": PaddingStale, "stale": PaddingStale, "compat": PaddingStale, " Zero ": PaddingZero} {
		got, err := ParsePadding(input)
		if err != nil {
			t.Fatalf("ParsePadding(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParsePadding(%q) = %v want %v", input, got, want)
		}
	}
	if _, err := ParsePadding("random"); err == nil {
		t.Fatal("expected error for unknown padding")
	}
}
