// Package world provides the 2D cell grid shared by the maze generator and
// the pathfinder, along with the event hooks renderers subscribe to.
package world

import "fmt"

// CellState is the logical and rendering category of a single grid cell.
type CellState uint8

// Cell states
const (
	Wall CellState = iota
	Passage
	Start
	End
	Visited
	Frontier
	SolutionPath
)

// AllCellStates returns every cell state in declaration order
func AllCellStates() []CellState {
	return []CellState{Wall, Passage, Start, End, Visited, Frontier, SolutionPath}
}

// String returns the name of the state
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Passage:
		return "Passage"
	case Start:
		return "Start"
	case End:
		return "End"
	case Visited:
		return "Visited"
	case Frontier:
		return "Frontier"
	case SolutionPath:
		return "SolutionPath"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Symbol returns the single-character map symbol for the state.
func (s CellState) Symbol() rune {
	switch s {
	case Wall:
		return '#'
	case Passage:
		return 'P'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Visited:
		return 'V'
	case Frontier:
		return 'F'
	case SolutionPath:
		return '.'
	default:
		return '?'
	}
}

// CellStateFromSymbol is the inverse of Symbol. ok is false for unknown runes.
func CellStateFromSymbol(r rune) (state CellState, ok bool) {
	for _, s := range AllCellStates() {
		if s.Symbol() == r {
			return s, true
		}
	}
	return Wall, false
}

// IsStructural reports whether the state survives a solver reset
// (walls and the two endpoints).
func (s CellState) IsStructural() bool {
	return s == Wall || s == Start || s == End
}

// IsOpen reports whether the cell can be walked through
func (s CellState) IsOpen() bool {
	return s != Wall
}
