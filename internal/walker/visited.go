package walker

import "sync"

// visited tracks the directories entered below one top-level root.
type visited struct {
	mu   sync.Mutex
	ents map[dirID]struct{}
}

func newVisited() *visited {
	return &visited{ents: make(map[dirID]struct{}, 64)}
}

// first reports whether id is new and records it.
func (v *visited) first(id dirID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, seen := v.ents[id]; seen {
		return false
	}
	v.ents[id] = struct{}{}
	return true
}
