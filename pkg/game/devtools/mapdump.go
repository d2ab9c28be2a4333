// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazeworks/pkg/engine/world"
)

const mapDumpFilename = "map.txt"

// Source is what a dump needs from a maze session
type Source interface {
	Grid() *world.Grid
	Seed() int64
	Generated() bool
	Path() []world.Position
}

// WriteMap writes the grid as one line of cell symbols per row
func WriteMap(w io.Writer, grid *world.Grid) error {
	if grid == nil {
		return errors.New("no grid")
	}
	_, err := io.WriteString(w, grid.String())
	return err
}

// WriteDump writes the full debug dump: metadata, legend, map, cell counts
// and the current solution path. Format is human- and LLM-readable
// (sections, key: value, consistent structure).
func WriteDump(w io.Writer, src Source) error {
	grid := src.Grid()
	if grid == nil {
		return errors.New("no grid")
	}

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout, search state) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", src.Seed())
	fmt.Fprintf(w, "generated: %v\n", src.Generated())
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "start_cell: %d,%d\n", grid.Start().Row, grid.Start().Col)
	fmt.Fprintf(w, "end_cell: %d,%d\n", grid.End().Row, grid.End().Col)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for _, s := range world.AllCellStates() {
		fmt.Fprintf(w, "%c = %s  ", s.Symbol(), s)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	if err := WriteMap(w, grid); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Cell counts ---")
	for _, s := range world.AllCellStates() {
		fmt.Fprintf(w, "  state: %s count: %d\n", s, grid.Count(s))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Solution path ---")
	path := src.Path()
	if len(path) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		fmt.Fprintf(w, "  length: %d\n", len(path)-1)
		for i, p := range path {
			fmt.Fprintf(w, "  step: %d row: %d col: %d\n", i, p.Row, p.Col)
		}
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}

// DumpMapToFile writes WriteDump output to map.txt in dir and returns the
// absolute path.
func DumpMapToFile(dir string, src Source) (string, error) {
	if dir == "" {
		dir = "."
	}
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, src); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
