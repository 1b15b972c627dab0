package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"chunksum/internal/manifest"
	"chunksum/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderVerdict(res manifest.Result, colorize bool) string {
	var line string
	switch res.Status {
	case manifest.StatusOK:
		line = res.Path + ": OK"
	case manifest.StatusFailed:
		line = res.Path + ": FAILED"
	case manifest.StatusDenied:
		line = res.Path + report.DeniedSuffix
	default:
		line = res.Path + ": FAILED open or read"
	}
	if colorize {
		if color := verdictColor(res.Status); color != "" {
			return color + line + ansiReset
		}
	}
	return line
}

func verdictColor(status manifest.Status) string {
	switch status {
	case manifest.StatusOK:
		return ansiGreen
	case manifest.StatusDenied:
		return ansiYellow
	case manifest.StatusFailed, manifest.StatusError:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
