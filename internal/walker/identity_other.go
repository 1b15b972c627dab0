//go:build !unix

package walker

type dirID struct {
	Dev uint64
	Ino uint64
}

// identify has no portable device/inode source; cycle detection is off.
func identify(string) (dirID, bool) {
	return dirID{}, false
}
