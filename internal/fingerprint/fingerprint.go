package fingerprint

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"chunksum/internal/checksum"
)

// Padding selects how a short final block is completed before folding.
type Padding int

const (
	// PaddingStale keeps whatever the reused block buffer already holds.
	PaddingStale Padding = iota
	// PaddingZero clears the unread tail of the block.
	PaddingZero
)

// readBufferSize sizes the buffered reader in front of each file. It is a
// multiple of the block size so buffer refills never split a block.
const readBufferSize = 64 * 1024

// ctxCheckInterval is the number of blocks folded between context checks.
const ctxCheckInterval = 4096

// ParsePadding maps a configuration value to a Padding.
func ParsePadding(value string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "stale", "compat":
		return PaddingStale, nil
	case "zero":
		return PaddingZero, nil
	default:
		return PaddingStale, fmt.Errorf("unsupported padding %q (want stale or zero)", value)
	}
}

func (p Padding) String() string {
	switch p {
	case PaddingZero:
		return "zero"
	default:
		return "stale"
	}
}

// Report is the outcome of fingerprinting one file.
type Report struct {
	Fingerprint string
	Path        string
	Size        int64
	Blocks      int64
}

// File fingerprints the regular file at path. Open and read failures are
// returned as *fs.PathError so callers can tell which operation failed.
func File(ctx context.Context, path string, padding Padding) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	fp, size, blocks, err := digest(ctx, bufio.NewReaderSize(f, readBufferSize), padding)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			err = &os.PathError{Op: "read", Path: path, Err: err}
		}
		return Report{}, err
	}
	return Report{Fingerprint: fp, Path: path, Size: size, Blocks: blocks}, nil
}

// Reader fingerprints r until EOF and returns the fingerprint and the
// number of bytes consumed.
func Reader(r io.Reader, padding Padding) (string, int64, error) {
	fp, size, _, err := digest(context.Background(), r, padding)
	return fp, size, err
}

func digest(ctx context.Context, r io.Reader, padding Padding) (string, int64, int64, error) {
	acc := checksum.New()
	buf := make([]byte, checksum.BlockSize)

	var size, blocks int64
	for {
		if blocks%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", size, blocks, err
			}
		}

		n, err := io.ReadFull(r, buf)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return "", size, blocks, err
		}
		if n == 0 {
			break
		}
		if n < len(buf) && padding == PaddingZero {
			clear(buf[n:])
		}
		acc.FoldBytes(buf)
		size += int64(n)
		blocks++
		if n < len(buf) {
			break
		}
	}
	return acc.String(), size, blocks, nil
}
