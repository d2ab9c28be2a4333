package generator

import (
	"fmt"

	"mazeworks/pkg/engine/world"
)

// carveStride is the distance between lattice cells. The cell in between is
// the wall that gets knocked out when two lattice cells are joined.
const carveStride = 2

// PrimGenerator carves a perfect maze with a randomized Prim's-style
// frontier expansion over the odd-coordinate lattice.
type PrimGenerator struct {
	chooser Chooser
}

// NewPrim creates a Prim generator drawing random choices from chooser
func NewPrim(chooser Chooser) *PrimGenerator {
	return &PrimGenerator{chooser: chooser}
}

// NewPrimWithSeed creates a Prim generator with a seeded math/rand source
func NewPrimWithSeed(seed int64) *PrimGenerator {
	return NewPrim(NewSeededChooser(seed))
}

// Name returns the name of this generator
func (g *PrimGenerator) Name() string {
	return "Randomized Prim"
}

// Generate resets grid to walls and carves a spanning tree of passages
// rooted at the grid's start cell. Start and End are stamped last.
func (g *PrimGenerator) Generate(grid *world.Grid) error {
	if grid == nil {
		return fmt.Errorf("generate: nil grid")
	}

	grid.Reset()

	seed := grid.Start()
	if err := grid.SetAt(seed, world.Passage); err != nil {
		return fmt.Errorf("generate: seeding %v: %w", seed, err)
	}

	f := newFrontier()
	if err := g.addFrontierCells(grid, f, seed); err != nil {
		return err
	}

	for f.Len() > 0 {
		cell := f.RemoveAt(g.chooser.Intn(f.Len()))

		carved := carvedNeighbors(grid, cell)
		if len(carved) == 0 {
			// Already joined through another path
			continue
		}

		target := carved[g.chooser.Intn(len(carved))]
		if err := grid.SetAt(cell, world.Passage); err != nil {
			return fmt.Errorf("generate: carving %v: %w", cell, err)
		}
		if err := grid.SetAt(cell.Midpoint(target), world.Passage); err != nil {
			return fmt.Errorf("generate: carving %v: %w", cell.Midpoint(target), err)
		}

		if err := g.addFrontierCells(grid, f, cell); err != nil {
			return err
		}
	}

	if err := grid.SetAt(grid.Start(), world.Start); err != nil {
		return fmt.Errorf("generate: marking start: %w", err)
	}
	if err := grid.SetAt(grid.End(), world.End); err != nil {
		return fmt.Errorf("generate: marking end: %w", err)
	}
	return nil
}

// addFrontierCells adds the wall cells two steps away from p to the frontier
func (g *PrimGenerator) addFrontierCells(grid *world.Grid, f *frontier, p world.Position) error {
	for _, n := range latticeNeighbors(grid, p) {
		if grid.StateAt(n) != world.Wall || f.Has(n) {
			continue
		}
		f.Add(n)
		if err := grid.SetAt(n, world.Frontier); err != nil {
			return fmt.Errorf("generate: marking frontier %v: %w", n, err)
		}
	}
	return nil
}

// carvedNeighbors returns the passage cells two steps away from p
func carvedNeighbors(grid *world.Grid, p world.Position) []world.Position {
	var out []world.Position
	for _, n := range latticeNeighbors(grid, p) {
		if grid.StateAt(n) == world.Passage {
			out = append(out, n)
		}
	}
	return out
}

// latticeNeighbors returns the positions two steps from p in Up, Down,
// Left, Right order, skipping any that would leave the playable interior.
func latticeNeighbors(grid *world.Grid, p world.Position) []world.Position {
	out := make([]world.Position, 0, 4)
	for _, dir := range world.AllDirections() {
		n := p.Step(dir, carveStride)
		if grid.IsPlayablePosition(n.Row, n.Col) {
			out = append(out, n)
		}
	}
	return out
}
