// Package generator tests Prim maze carving: golden trace, connectivity,
// corridor shape, and seed determinism.
package generator

import (
	"testing"

	"mazeworks/pkg/engine/world"
)

// countReachableOpenCells returns the number of non-wall cells reachable
// from start via Up/Down/Left/Right.
func countReachableOpenCells(grid *world.Grid, start world.Position) int {
	if !grid.StateAt(start).IsOpen() {
		return 0
	}
	visited := map[world.Position]bool{start: true}
	queue := []world.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, dir := range world.AllDirections() {
			n := p.Step(dir, 1)
			if grid.StateAt(n).IsOpen() && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func countOpenCells(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(row, col int, state world.CellState) {
		if state.IsOpen() {
			n++
		}
	})
	return n
}

func newTestGrid(t *testing.T, rows, cols int) *world.Grid {
	t.Helper()
	grid, err := world.NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error = %v", rows, cols, err)
	}
	return grid
}

func TestPrimGenerate_GoldenFirstChooser(t *testing.T) {
	grid := newTestGrid(t, 5, 5)
	rec := &world.Recorder{}
	grid.SetListener(rec)

	if err := NewPrim(FirstChooser{}).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}

	wantMap := "#####\n" +
		"#SPP#\n" +
		"#P#P#\n" +
		"#P#E#\n" +
		"#####\n"
	if got := grid.String(); got != wantMap {
		t.Errorf("grid =\n%s\nwant\n%s", got, wantMap)
	}

	events := rec.CellEvents()
	if len(events) != 25+12 {
		t.Fatalf("got %d cell events, want 37 (25 reset + 12 carve)", len(events))
	}
	for i, e := range events[:25] {
		if e.State != world.Wall {
			t.Fatalf("reset event %d = %+v, want Wall", i, e)
		}
	}

	want := []world.Event{
		{Row: 1, Col: 1, State: world.Passage},
		{Row: 3, Col: 1, State: world.Frontier},
		{Row: 1, Col: 3, State: world.Frontier},
		{Row: 3, Col: 1, State: world.Passage},
		{Row: 2, Col: 1, State: world.Passage},
		{Row: 3, Col: 3, State: world.Frontier},
		{Row: 1, Col: 3, State: world.Passage},
		{Row: 1, Col: 2, State: world.Passage},
		{Row: 3, Col: 3, State: world.Passage},
		{Row: 2, Col: 3, State: world.Passage},
		{Row: 1, Col: 1, State: world.Start},
		{Row: 3, Col: 3, State: world.End},
	}
	for i, w := range want {
		got := events[25+i]
		if got.Row != w.Row || got.Col != w.Col || got.State != w.State {
			t.Errorf("carve event %d = (%d,%d) %v, want (%d,%d) %v", i, got.Row, got.Col, got.State, w.Row, w.Col, w.State)
		}
	}
}

func TestPrimGenerate_LastChooserStillSpans(t *testing.T) {
	grid := newTestGrid(t, 7, 9)
	if err := NewPrim(LastChooser{}).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	total := countOpenCells(grid)
	if reachable := countReachableOpenCells(grid, grid.Start()); reachable != total {
		t.Errorf("reachable open cells %d != total open cells %d", reachable, total)
	}
}

func TestPrimGenerate_AllOpenCellsReachable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		grid := newTestGrid(t, 21, 31)
		if err := NewPrimWithSeed(seed).Generate(grid); err != nil {
			t.Fatalf("seed %d: Generate error = %v", seed, err)
		}
		total := countOpenCells(grid)
		reachable := countReachableOpenCells(grid, grid.Start())
		if reachable != total {
			t.Errorf("seed %d: reachable open cells %d != total open cells %d", seed, reachable, total)
		}
	}
}

func TestPrimGenerate_IsSpanningTree(t *testing.T) {
	// A tree over the odd lattice has lattice cells = L and open cells = 2L - 1
	// (one connector per edge, L-1 edges).
	grid := newTestGrid(t, 15, 11)
	if err := NewPrimWithSeed(42).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	lattice := ((grid.Rows() - 1) / 2) * ((grid.Cols() - 1) / 2)
	if got, want := countOpenCells(grid), 2*lattice-1; got != want {
		t.Errorf("open cells = %d, want %d for a spanning tree", got, want)
	}
	grid.ForEachCell(func(row, col int, state world.CellState) {
		if row%2 == 1 && col%2 == 1 && !state.IsOpen() {
			t.Errorf("lattice cell (%d,%d) left as wall", row, col)
		}
	})
}

func TestPrimGenerate_NoOpenTwoByTwoBlocks(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		grid := newTestGrid(t, 11, 13)
		if err := NewPrimWithSeed(seed).Generate(grid); err != nil {
			t.Fatalf("seed %d: Generate error = %v", seed, err)
		}
		for row := 0; row < grid.Rows()-1; row++ {
			for col := 0; col < grid.Cols()-1; col++ {
				if grid.State(row, col).IsOpen() && grid.State(row+1, col).IsOpen() &&
					grid.State(row, col+1).IsOpen() && grid.State(row+1, col+1).IsOpen() {
					t.Errorf("seed %d: open 2x2 block at (%d,%d)", seed, row, col)
				}
			}
		}
	}
}

func TestPrimGenerate_PerimeterStaysWall(t *testing.T) {
	grid := newTestGrid(t, 9, 9)
	if err := NewPrimWithSeed(7).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	grid.ForEachCell(func(row, col int, state world.CellState) {
		if grid.IsOnPerimeter(row, col) && state != world.Wall {
			t.Errorf("perimeter cell (%d,%d) = %v, want Wall", row, col, state)
		}
	})
}

func TestPrimGenerate_EndpointsAndNoLeftoverFrontier(t *testing.T) {
	grid := newTestGrid(t, 11, 11)
	if err := NewPrimWithSeed(3).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if grid.StateAt(grid.Start()) != world.Start {
		t.Errorf("start cell = %v, want Start", grid.StateAt(grid.Start()))
	}
	if grid.StateAt(grid.End()) != world.End {
		t.Errorf("end cell = %v, want End", grid.StateAt(grid.End()))
	}
	if grid.Count(world.Start) != 1 || grid.Count(world.End) != 1 {
		t.Errorf("Start count %d, End count %d; want 1 each", grid.Count(world.Start), grid.Count(world.End))
	}
	if n := grid.Count(world.Frontier); n != 0 {
		t.Errorf("%d frontier cells left after generation", n)
	}
}

func TestPrimGenerate_SameSeedSameMaze(t *testing.T) {
	a := newTestGrid(t, 21, 31)
	b := newTestGrid(t, 21, 31)
	if err := NewPrimWithSeed(99).Generate(a); err != nil {
		t.Fatal(err)
	}
	if err := NewPrimWithSeed(99).Generate(b); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("same seed produced different mazes:\n%s\nvs\n%s", a, b)
	}

	c := newTestGrid(t, 21, 31)
	if err := NewPrimWithSeed(100).Generate(c); err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("different seeds produced identical 21x31 mazes")
	}
}

func TestPrimGenerate_CustomEndpoints(t *testing.T) {
	grid, err := world.NewGridWithEndpoints(9, 9, world.Pos(7, 1), world.Pos(1, 7))
	if err != nil {
		t.Fatal(err)
	}
	if err := NewPrimWithSeed(5).Generate(grid); err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	if grid.State(7, 1) != world.Start || grid.State(1, 7) != world.End {
		t.Errorf("custom endpoints not stamped:\n%s", grid)
	}
	if grid.State(1, 1) != world.Passage {
		t.Errorf("(1,1) = %v, want Passage when start is elsewhere", grid.State(1, 1))
	}
}

func TestPrimGenerate_NilGrid(t *testing.T) {
	if err := NewPrimWithSeed(1).Generate(nil); err == nil {
		t.Error("Generate(nil) error = nil, want error")
	}
}

func TestFrontier_NoDuplicatesAndOrder(t *testing.T) {
	f := newFrontier()
	if !f.Add(world.Pos(1, 1)) || !f.Add(world.Pos(3, 3)) || !f.Add(world.Pos(5, 5)) {
		t.Fatal("Add of new cell returned false")
	}
	if f.Add(world.Pos(3, 3)) {
		t.Error("Add of duplicate returned true")
	}
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}
	if got := f.RemoveAt(1); got != world.Pos(3, 3) {
		t.Errorf("RemoveAt(1) = %v, want (3,3)", got)
	}
	if f.Has(world.Pos(3, 3)) {
		t.Error("removed cell still reported by Has")
	}
	if got := f.RemoveAt(0); got != world.Pos(1, 1) {
		t.Errorf("RemoveAt(0) = %v, want (1,1)", got)
	}
	if got := f.RemoveAt(0); got != world.Pos(5, 5) {
		t.Errorf("RemoveAt(0) = %v, want (5,5)", got)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
}
