package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// FitsGrid reports whether a rows × cols grid drawn cellWidth columns per
// cell, plus reservedLines of text, fits in a width × height terminal.
func FitsGrid(width, height, rows, cols, cellWidth, reservedLines int) bool {
	return cols*cellWidth <= width && rows+reservedLines <= height
}
