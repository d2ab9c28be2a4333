package solver

import (
	"testing"

	"mazeworks/pkg/engine/world"
	"mazeworks/pkg/game/generator"
)

func generatedGrid(t *testing.T, rows, cols int, chooser generator.Chooser) *world.Grid {
	t.Helper()
	grid, err := world.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", rows, cols, err)
	}
	if err := generator.NewPrim(chooser).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	return grid
}

// treePathLength returns the number of cells on the unique simple path
// between start and end, found by depth-first search over open cells.
func treePathLength(grid *world.Grid, start, end world.Position) int {
	var walk func(p, from world.Position, depth int) int
	walk = func(p, from world.Position, depth int) int {
		if p == end {
			return depth
		}
		for _, dir := range world.AllDirections() {
			n := p.Step(dir, 1)
			if n == from || !grid.StateAt(n).IsOpen() {
				continue
			}
			if d := walk(n, p, depth+1); d > 0 {
				return d
			}
		}
		return 0
	}
	return walk(start, world.Pos(-1, -1), 1)
}

func TestSolve_GoldenFirstChooser(t *testing.T) {
	grid := generatedGrid(t, 5, 5, generator.FirstChooser{})
	rec := &world.Recorder{}
	grid.SetListener(rec)

	res := New().Solve(grid)
	if !res.Found {
		t.Fatal("Solve() Found = false, want true")
	}

	wantPath := []world.Position{world.Pos(1, 1), world.Pos(1, 2), world.Pos(1, 3), world.Pos(2, 3), world.Pos(3, 3)}
	if len(res.Path) != len(wantPath) {
		t.Fatalf("path = %v, want %v", res.Path, wantPath)
	}
	for i := range wantPath {
		if res.Path[i] != wantPath[i] {
			t.Errorf("path[%d] = %v, want %v", i, res.Path[i], wantPath[i])
		}
	}
	if res.Explored != 6 {
		t.Errorf("Explored = %d, want 6", res.Explored)
	}

	wantMap := "#####\n" +
		"#S..#\n" +
		"#V#.#\n" +
		"#V#E#\n" +
		"#####\n"
	if got := grid.String(); got != wantMap {
		t.Errorf("grid =\n%s\nwant\n%s", got, wantMap)
	}

	want := []world.Event{
		// clearing
		{Row: 1, Col: 2, State: world.Passage},
		{Row: 1, Col: 3, State: world.Passage},
		{Row: 2, Col: 1, State: world.Passage},
		{Row: 2, Col: 3, State: world.Passage},
		{Row: 3, Col: 1, State: world.Passage},
		// search
		{Row: 2, Col: 1, State: world.Frontier},
		{Row: 1, Col: 2, State: world.Frontier},
		{Row: 2, Col: 1, State: world.Visited},
		{Row: 3, Col: 1, State: world.Frontier},
		{Row: 1, Col: 2, State: world.Visited},
		{Row: 1, Col: 3, State: world.Frontier},
		{Row: 3, Col: 1, State: world.Visited},
		{Row: 1, Col: 3, State: world.Visited},
		{Row: 2, Col: 3, State: world.Frontier},
		{Row: 2, Col: 3, State: world.Visited},
		// path, in order
		{Row: 1, Col: 2, State: world.SolutionPath},
		{Row: 1, Col: 3, State: world.SolutionPath},
		{Row: 2, Col: 3, State: world.SolutionPath},
	}
	events := rec.CellEvents()
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		got := events[i]
		if got.Row != w.Row || got.Col != w.Col || got.State != w.State {
			t.Errorf("event %d = (%d,%d) %v, want (%d,%d) %v", i, got.Row, got.Col, got.State, w.Row, w.Col, w.State)
		}
	}
}

func TestSolve_NeverTouchesEndpoints(t *testing.T) {
	grid := generatedGrid(t, 21, 31, generator.NewSeededChooser(11))
	rec := &world.Recorder{}
	grid.SetListener(rec)

	if res := New().Solve(grid); !res.Found {
		t.Fatal("Solve() Found = false on a generated maze")
	}
	for _, e := range rec.CellEvents() {
		if e.Position() == grid.Start() || e.Position() == grid.End() {
			t.Errorf("solver emitted %v for endpoint %v", e.State, e.Position())
		}
	}
	if grid.StateAt(grid.Start()) != world.Start || grid.StateAt(grid.End()) != world.End {
		t.Error("endpoints overwritten by solver")
	}
}

func TestSolve_PathLengthMatchesTreePath(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		grid := generatedGrid(t, 15, 21, generator.NewSeededChooser(seed))
		want := treePathLength(grid, grid.Start(), grid.End())

		res := New().Solve(grid)
		if !res.Found {
			t.Fatalf("seed %d: no path found", seed)
		}
		if res.Length() != want {
			t.Errorf("seed %d: BFS path length %d, tree path length %d", seed, res.Length(), want)
		}
		if got := grid.Count(world.SolutionPath); got != res.Length()-2 {
			t.Errorf("seed %d: %d SolutionPath cells, want %d", seed, got, res.Length()-2)
		}
		for i := 1; i < len(res.Path); i++ {
			if res.Path[i-1].ManhattanDistance(res.Path[i]) != 1 {
				t.Errorf("seed %d: path step %v -> %v is not adjacent", seed, res.Path[i-1], res.Path[i])
			}
		}
	}
}

func TestSolve_TwiceIsStable(t *testing.T) {
	grid := generatedGrid(t, 11, 11, generator.NewSeededChooser(8))

	first := New().Solve(grid)
	afterFirst := grid.Clone()
	second := New().Solve(grid)

	if !grid.Equal(afterFirst) {
		t.Errorf("grid differs after second solve:\n%s\nvs\n%s", grid, afterFirst)
	}
	if len(first.Path) != len(second.Path) {
		t.Fatalf("path lengths differ: %d vs %d", len(first.Path), len(second.Path))
	}
	for i := range first.Path {
		if first.Path[i] != second.Path[i] {
			t.Errorf("path[%d] differs: %v vs %v", i, first.Path[i], second.Path[i])
		}
	}
}

func TestSolve_NoPath(t *testing.T) {
	grid, err := world.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Two disconnected rooms
	_ = grid.Set(1, 1, world.Start)
	_ = grid.Set(1, 2, world.Passage)
	_ = grid.Set(3, 3, world.End)

	res := New().Solve(grid)
	if res.Found {
		t.Error("Found = true on a disconnected grid")
	}
	if len(res.Path) != 0 {
		t.Errorf("Path = %v, want empty", res.Path)
	}
	if grid.Count(world.SolutionPath) != 0 {
		t.Error("SolutionPath cells marked without a path")
	}
	if grid.State(1, 2) != world.Visited {
		t.Errorf("(1,2) = %v, want Visited", grid.State(1, 2))
	}
}

func TestSolve_UngeneratedGrid(t *testing.T) {
	grid, err := world.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if res := New().Solve(grid); res.Found {
		t.Error("Found = true on an all-wall grid")
	}
	if grid.Count(world.Wall) != 25 {
		t.Error("solver changed an all-wall grid")
	}
}

func TestSolve_ClearsOldMarkings(t *testing.T) {
	grid := generatedGrid(t, 9, 9, generator.NewSeededChooser(2))
	first := New().Solve(grid)

	// Scribble over the grid the way a stale run would leave it
	grid.ForEachCell(func(row, col int, state world.CellState) {
		if state == world.Passage {
			_ = grid.Set(row, col, world.Frontier)
		}
	})

	second := New().Solve(grid)
	if second.Length() != first.Length() {
		t.Errorf("path length after stale markings = %d, want %d", second.Length(), first.Length())
	}
}

func TestSolve_NilGrid(t *testing.T) {
	if res := New().Solve(nil); res.Found {
		t.Error("Solve(nil) Found = true")
	}
}
