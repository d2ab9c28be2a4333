package devtools

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mazeworks/pkg/engine/world"
)

// ParseMap reads a grid written by WriteMap. The map must contain exactly
// one S and one E; those become the grid endpoints. The map ends at the
// first "key: value" line, so the output of the generate command parses.
func ParseMap(r io.Reader) (*world.Grid, error) {
	var rows [][]world.CellState
	var start, end []world.Position

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.Contains(line, ":") {
			break
		}
		row := make([]world.CellState, 0, len(line))
		for col, ch := range []rune(line) {
			s, ok := world.CellStateFromSymbol(ch)
			if !ok {
				return nil, fmt.Errorf("line %d col %d: unknown cell symbol %q", len(rows)+1, col, ch)
			}
			switch s {
			case world.Start:
				start = append(start, world.Pos(len(rows), col))
			case world.End:
				end = append(end, world.Pos(len(rows), col))
			}
			row = append(row, s)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", world.ErrInvalidDimension, len(rows)+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty map", world.ErrInvalidDimension)
	}
	if len(start) != 1 || len(end) != 1 {
		return nil, fmt.Errorf("%w: map needs exactly one S and one E (found %d and %d)", world.ErrInvalidEndpoints, len(start), len(end))
	}

	grid, err := world.NewGridWithEndpoints(len(rows), len(rows[0]), start[0], end[0])
	if err != nil {
		return nil, err
	}
	if err := grid.Restore(rows); err != nil {
		return nil, err
	}
	return grid, nil
}
