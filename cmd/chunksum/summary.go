package main

import (
	"strconv"
	"time"

	"chunksum/internal/report"
	"chunksum/internal/walker"
)

var summaryColumns = []report.Column{
	{Header: "Metric"},
	{Header: "Value", Align: report.AlignRight},
}

func renderRunSummary(stats walker.Stats, elapsed time.Duration) string {
	rows := [][]string{
		{"Files", strconv.FormatInt(stats.Files, 10)},
		{"Bytes", strconv.FormatInt(stats.Bytes, 10)},
		{"Directories", strconv.FormatInt(stats.Directories, 10)},
		{"Access denied", strconv.FormatInt(stats.Denied, 10)},
		{"Skipped", strconv.FormatInt(stats.Skipped, 10)},
		{"Revisited", strconv.FormatInt(stats.Revisited, 10)},
		{"Failures", strconv.FormatInt(stats.Failures, 10)},
		{"Elapsed", elapsed.Round(time.Millisecond).String()},
	}
	return report.RenderTable(summaryColumns, rows)
}
