//go:build unix

package walker

import "golang.org/x/sys/unix"

type dirID struct {
	Dev uint64
	Ino uint64
}

// identify returns the device and inode of path, following symlinks.
func identify(path string) (dirID, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return dirID{}, false
	}
	return dirID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, true
}
