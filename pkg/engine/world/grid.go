package world

import (
	"fmt"
)

// MinDimension is the smallest allowed number of rows or columns
const MinDimension = 5

// Grid is a fixed-size rows × cols array of cell states with a fixed start
// and end cell. All mutation goes through Set so that every single-cell
// change reaches the attached listener.
type Grid struct {
	cells []CellState
	rows  int
	cols  int

	start Position
	end   Position

	listener Listener
}

// ValidateDimensions checks that rows and cols are odd and at least MinDimension
func ValidateDimensions(rows, cols int) error {
	if rows < MinDimension || cols < MinDimension || rows%2 == 0 || cols%2 == 0 {
		return fmt.Errorf("%w: %dx%d (both must be odd and >= %d)", ErrInvalidDimension, rows, cols, MinDimension)
	}
	return nil
}

// DefaultEndpoints returns the start (1,1) and end (rows-2, cols-2) cells
func DefaultEndpoints(rows, cols int) (start, end Position) {
	return Pos(1, 1), Pos(rows-2, cols-2)
}

// ValidateEndpoints checks that start and end are distinct odd-coordinate
// cells inside the playable interior of a rows × cols grid. Only odd cells
// are guaranteed to be carved; any other cell may stay a wall.
func ValidateEndpoints(rows, cols int, start, end Position) error {
	if start == end {
		return fmt.Errorf("%w: start and end both at %v", ErrInvalidEndpoints, start)
	}
	for _, p := range []Position{start, end} {
		if p.Row < 1 || p.Row > rows-2 || p.Col < 1 || p.Col > cols-2 {
			return fmt.Errorf("%w: %v is outside the interior of a %dx%d grid", ErrInvalidEndpoints, p, rows, cols)
		}
		if p.Row%2 == 0 || p.Col%2 == 0 {
			return fmt.Errorf("%w: %v is not on an odd row and column", ErrInvalidEndpoints, p)
		}
	}
	return nil
}

// NewGrid creates a wall-filled grid with the default endpoints
func NewGrid(rows, cols int) (*Grid, error) {
	start, end := DefaultEndpoints(rows, cols)
	return NewGridWithEndpoints(rows, cols, start, end)
}

// NewGridWithEndpoints creates a wall-filled grid with explicit endpoints
func NewGridWithEndpoints(rows, cols int, start, end Position) (*Grid, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if err := ValidateEndpoints(rows, cols, start, end); err != nil {
		return nil, err
	}
	return &Grid{
		cells: make([]CellState, rows*cols),
		rows:  rows,
		cols:  cols,
		start: start,
		end:   end,
	}, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the start cell position
func (g *Grid) Start() Position {
	return g.start
}

// End returns the end cell position
func (g *Grid) End() Position {
	return g.end
}

// SetListener attaches l to receive cell change notifications. nil detaches.
func (g *Grid) SetListener(l Listener) {
	g.listener = l
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// Get returns the state at row, col
func (g *Grid) Get(row, col int) (CellState, error) {
	if !g.IsValidPosition(row, col) {
		return Wall, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// GetAt is Get for a Position
func (g *Grid) GetAt(p Position) (CellState, error) {
	return g.Get(p.Row, p.Col)
}

// State returns the state at row, col, treating out-of-bounds cells as walls
func (g *Grid) State(row, col int) CellState {
	if !g.IsValidPosition(row, col) {
		return Wall
	}
	return g.cells[row*g.cols+col]
}

// StateAt is State for a Position
func (g *Grid) StateAt(p Position) CellState {
	return g.State(p.Row, p.Col)
}

// Set changes the state at row, col and notifies the listener, even when
// the state does not change.
func (g *Grid) Set(row, col int, state CellState) error {
	if !g.IsValidPosition(row, col) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	g.cells[row*g.cols+col] = state
	if g.listener != nil {
		g.listener.OnCellChanged(row, col, state)
	}
	return nil
}

// SetAt is Set for a Position
func (g *Grid) SetAt(p Position, state CellState) error {
	return g.Set(p.Row, p.Col, state)
}

// Reset fills every cell with Wall, one notification per cell
func (g *Grid) Reset() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			_ = g.Set(row, col, Wall)
		}
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, state CellState)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Count returns how many cells hold state
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, s := range g.cells {
		if s == state {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the cell states, one slice per row
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, g.rows)
	for row := range out {
		out[row] = make([]CellState, g.cols)
		copy(out[row], g.cells[row*g.cols:(row+1)*g.cols])
	}
	return out
}

// Restore overwrites the cells from a Snapshot of the same size without
// notifying the listener.
func (g *Grid) Restore(snapshot [][]CellState) error {
	if len(snapshot) != g.rows {
		return fmt.Errorf("%w: snapshot has %d rows, grid has %d", ErrInvalidDimension, len(snapshot), g.rows)
	}
	for row, cells := range snapshot {
		if len(cells) != g.cols {
			return fmt.Errorf("%w: snapshot row %d has %d cols, grid has %d", ErrInvalidDimension, row, len(cells), g.cols)
		}
	}
	for row, cells := range snapshot {
		copy(g.cells[row*g.cols:(row+1)*g.cols], cells)
	}
	return nil
}

// Clone returns a detached copy of the grid with no listener
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells: make([]CellState, len(g.cells)),
		rows:  g.rows,
		cols:  g.cols,
		start: g.start,
		end:   g.end,
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size, endpoints and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols || g.start != other.start || g.end != other.end {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as one line of symbols per row
func (g *Grid) String() string {
	buf := make([]rune, 0, g.rows*(g.cols+1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			buf = append(buf, g.cells[row*g.cols+col].Symbol())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
