package world

import "fmt"

// Direction represents an axis-aligned step on the grid
type Direction int

// Direction constants. The declaration order is the neighbor scan order used
// by both algorithms.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns all valid directions in scan order
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four axis directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Position is a grid coordinate. It is comparable and used as a map key.
type Position struct {
	Row int `yaml:"row" mapstructure:"row"`
	Col int `yaml:"col" mapstructure:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position n cells away in direction d
func (p Position) Step(d Direction, n int) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// Midpoint returns the cell halfway between p and other. Only meaningful
// for positions two steps apart on one axis.
func (p Position) Midpoint(other Position) Position {
	return Position{Row: p.Row + (other.Row-p.Row)/2, Col: p.Col + (other.Col-p.Col)/2}
}

// ManhattanDistance returns |dRow| + |dCol|
func (p Position) ManhattanDistance(other Position) int {
	rowDist := p.Row - other.Row
	colDist := p.Col - other.Col
	if rowDist < 0 {
		rowDist = -rowDist
	}
	if colDist < 0 {
		colDist = -colDist
	}
	return rowDist + colDist
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
