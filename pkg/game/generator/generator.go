package generator

import (
	"math/rand"

	"mazeworks/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms. Generate
// owns the grid for the duration of the call and reports every carve
// through the grid's listener.
type GridGenerator interface {
	Generate(grid *world.Grid) error
	Name() string
}

// Chooser picks a uniformly random index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// NewSeededChooser returns a math/rand backed chooser for the given seed
func NewSeededChooser(seed int64) Chooser {
	return rand.New(rand.NewSource(seed))
}

// FirstChooser always picks the first candidate. Used for reproducible
// golden traces.
type FirstChooser struct{}

// Intn always returns 0
func (FirstChooser) Intn(int) int {
	return 0
}

// LastChooser always picks the last candidate
type LastChooser struct{}

// Intn always returns n-1
func (LastChooser) Intn(n int) int {
	return n - 1
}
