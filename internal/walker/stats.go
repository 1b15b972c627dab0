package walker

import "sync/atomic"

// Stats summarises one run.
type Stats struct {
	Files       int64
	Bytes       int64
	Directories int64
	Denied      int64
	Skipped     int64
	Revisited   int64
	Failures    int64
}

type counters struct {
	files       atomic.Int64
	bytes       atomic.Int64
	directories atomic.Int64
	denied      atomic.Int64
	skipped     atomic.Int64
	revisited   atomic.Int64
	failures    atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Files:       c.files.Load(),
		Bytes:       c.bytes.Load(),
		Directories: c.directories.Load(),
		Denied:      c.denied.Load(),
		Skipped:     c.skipped.Load(),
		Revisited:   c.revisited.Load(),
		Failures:    c.failures.Load(),
	}
}
