package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"chunksum/internal/checksum"
	"chunksum/internal/report"
)

// ErrMalformedLine reports a manifest line that is neither a fingerprint
// line nor an access-denied line.
var ErrMalformedLine = errors.New("malformed manifest line")

// maxLineLength bounds a single manifest line; long paths need more than
// bufio's default token size.
const maxLineLength = 1 << 20

// Entry is one fingerprint line of a manifest.
type Entry struct {
	Fingerprint string
	Path        string
	Source      string
	Line        int
}

// LineError describes one unusable manifest line.
type LineError struct {
	Source string
	Line   int
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Parse reads manifest lines from r. source names r in entries and errors.
// Malformed lines do not stop parsing; they are returned alongside the
// valid entries. The error result is reserved for read failures.
func Parse(r io.Reader, source string) ([]Entry, []*LineError, error) {
	var (
		entries []Entry
		bad     []*LineError
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fp, path, ok := strings.Cut(line, "\t")
		if !ok {
			if strings.HasSuffix(line, report.DeniedSuffix) {
				continue
			}
			bad = append(bad, &LineError{Source: source, Line: lineNo, Err: fmt.Errorf("%w: missing tab separator", ErrMalformedLine)})
			continue
		}
		if _, err := checksum.Parse(fp); err != nil {
			bad = append(bad, &LineError{Source: source, Line: lineNo, Err: fmt.Errorf("%w: %w", ErrMalformedLine, err)})
			continue
		}
		if path == "" {
			bad = append(bad, &LineError{Source: source, Line: lineNo, Err: fmt.Errorf("%w: empty path", ErrMalformedLine)})
			continue
		}
		entries = append(entries, Entry{Fingerprint: fp, Path: path, Source: source, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return entries, bad, fmt.Errorf("read manifest %s: %w", source, err)
	}
	return entries, bad, nil
}
