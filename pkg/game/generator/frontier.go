package generator

import (
	"github.com/zyedidia/generic/mapset"

	"mazeworks/pkg/engine/world"
)

// frontier is the set of wall cells bordering the carved region. Cells are
// kept in insertion order so index-based choice is reproducible.
type frontier struct {
	cells   []world.Position
	members mapset.Set[world.Position]
}

func newFrontier() *frontier {
	return &frontier{members: mapset.New[world.Position]()}
}

// Len returns the number of frontier cells
func (f *frontier) Len() int {
	return len(f.cells)
}

// Has reports whether p is in the frontier
func (f *frontier) Has(p world.Position) bool {
	return f.members.Has(p)
}

// Add inserts p, returning false if it was already present
func (f *frontier) Add(p world.Position) bool {
	if f.members.Has(p) {
		return false
	}
	f.members.Put(p)
	f.cells = append(f.cells, p)
	return true
}

// RemoveAt removes and returns the i-th cell, keeping the order of the rest
func (f *frontier) RemoveAt(i int) world.Position {
	p := f.cells[i]
	f.cells = append(f.cells[:i], f.cells[i+1:]...)
	f.members.Remove(p)
	return p
}
