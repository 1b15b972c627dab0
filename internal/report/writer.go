package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"chunksum/internal/fingerprint"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// DeniedSuffix follows the path on an access-denied text line.
const DeniedSuffix = " : Access denied"

// ParseFormat maps a configuration value to a Format.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or table)", value)
	}
}

type jsonLine struct {
	Fingerprint string `json:"fingerprint,omitempty"`
	Path        string `json:"path"`
	Size        *int64 `json:"size,omitempty"`
	Error       string `json:"error,omitempty"`
}

type tableRow struct {
	path        string
	fingerprint string
	size        string
}

// Writer renders results to an io.Writer. It is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	format Format
	rows   []tableRow
	closed bool
}

// NewWriter returns a Writer emitting format to out.
func NewWriter(out io.Writer, format Format) *Writer {
	if format == "" {
		format = FormatText
	}
	return &Writer{out: out, format: format}
}

// Report writes one fingerprint line.
func (w *Writer) Report(rep fingerprint.Report) error {
	switch w.format {
	case FormatTable:
		return w.buffer(tableRow{path: rep.Path, fingerprint: rep.Fingerprint, size: fmt.Sprintf("%d", rep.Size)})
	case FormatJSON:
		size := rep.Size
		return w.writeJSON(jsonLine{Fingerprint: rep.Fingerprint, Path: rep.Path, Size: &size})
	default:
		return w.writeLine(rep.Fingerprint + "\t" + rep.Path + "\n")
	}
}

// Denied writes one access-denied line. The cause is not part of the text
// format.
func (w *Writer) Denied(path string, _ error) error {
	switch w.format {
	case FormatTable:
		return w.buffer(tableRow{path: path, fingerprint: "access denied", size: "-"})
	case FormatJSON:
		return w.writeJSON(jsonLine{Path: path, Error: "access denied"})
	default:
		return w.writeLine(path + DeniedSuffix + "\n")
	}
}

// Close renders any buffered rows. It does not close the underlying writer.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.format != FormatTable {
		return nil
	}

	col := collate.New(language.Und)
	slices.SortStableFunc(w.rows, func(a, b tableRow) int {
		return col.CompareString(a.path, b.path)
	})
	rows := make([][]string, 0, len(w.rows))
	for _, r := range w.rows {
		rows = append(rows, []string{r.fingerprint, r.size, r.path})
	}
	rendered := RenderTable(reportColumns, rows)
	_, err := io.WriteString(w.out, rendered+"\n")
	return err
}

func (w *Writer) writeJSON(line jsonLine) error {
	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return w.writeLine(string(data) + "\n")
}

func (w *Writer) writeLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errClosed
	}
	_, err := io.WriteString(w.out, line)
	return err
}

func (w *Writer) buffer(row tableRow) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return errClosed
	}
	w.rows = append(w.rows, row)
	return nil
}
