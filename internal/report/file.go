package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

var errClosed = errors.New("report writer closed")

// LockedFile is a report file held under an exclusive advisory lock on
// "<path>.lock" for as long as it is open.
type LockedFile struct {
	*os.File
	lock *flock.Flock
}

// OpenFile truncates or creates path for writing. It fails immediately if
// another process holds the lock.
func OpenFile(path string) (*LockedFile, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another chunksum run is writing %s", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open report file: %w", err)
	}
	return &LockedFile{File: file, lock: lock}, nil
}

// Close closes the file and releases the lock.
func (f *LockedFile) Close() error {
	closeErr := f.File.Close()
	unlockErr := f.lock.Unlock()
	if closeErr != nil {
		return closeErr
	}
	if unlockErr != nil {
		return fmt.Errorf("release lock: %w", unlockErr)
	}
	return nil
}
