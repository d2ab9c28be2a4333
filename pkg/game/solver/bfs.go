// Package solver finds the shortest path through a carved maze with a
// breadth-first search, marking its progress on the grid as it goes.
package solver

import (
	"github.com/zyedidia/generic/queue"

	"mazeworks/pkg/engine/world"
)

// Result is the outcome of a search
type Result struct {
	// Found is false when the end cell was never reached
	Found bool

	// Path runs from start to end inclusive. Empty when not found.
	Path []world.Position

	// Explored is the number of cells dequeued and expanded
	Explored int
}

// Length returns the number of cells on the path, endpoints included
func (r Result) Length() int {
	return len(r.Path)
}

// Pathfinder runs BFS between the grid's start and end cells
type Pathfinder struct{}

// New creates a Pathfinder
func New() *Pathfinder {
	return &Pathfinder{}
}

// Name returns the name of the search algorithm
func (p *Pathfinder) Name() string {
	return "Breadth-First Search"
}

// Solve clears earlier search markings, searches from start to end and, on
// success, marks the cells between them as SolutionPath in path order.
// The start and end cells are never overwritten.
func (p *Pathfinder) Solve(grid *world.Grid) Result {
	if grid == nil {
		return Result{}
	}

	clearMarkings(grid)

	start, end := grid.Start(), grid.End()

	frontier := queue.New[world.Position]()
	frontier.Enqueue(start)
	// start maps to itself; it is the only cell that does
	came := map[world.Position]world.Position{start: start}

	explored := 0
	for !frontier.Empty() {
		cur := frontier.Dequeue()
		if cur == end {
			break
		}
		explored++

		if cur != start {
			_ = grid.SetAt(cur, world.Visited)
		}

		for _, dir := range world.AllDirections() {
			next := cur.Step(dir, 1)
			if !grid.IsValidPosition(next.Row, next.Col) || grid.StateAt(next) == world.Wall {
				continue
			}
			if _, seen := came[next]; seen {
				continue
			}
			frontier.Enqueue(next)
			came[next] = cur
			if next != end {
				_ = grid.SetAt(next, world.Frontier)
			}
		}
	}

	if _, ok := came[end]; !ok {
		return Result{Explored: explored}
	}

	path := reconstruct(came, start, end)
	for _, pos := range path[1 : len(path)-1] {
		_ = grid.SetAt(pos, world.SolutionPath)
	}
	return Result{Found: true, Path: path, Explored: explored}
}

// clearMarkings reverts every non-structural cell to Passage
func clearMarkings(grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			if !grid.State(row, col).IsStructural() {
				_ = grid.Set(row, col, world.Passage)
			}
		}
	}
}

// reconstruct walks predecessor links back from end and returns the path
// in start to end order.
func reconstruct(came map[world.Position]world.Position, start, end world.Position) []world.Position {
	path := []world.Position{end}
	for pos := end; pos != start; {
		pos = came[pos]
		path = append(path, pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
