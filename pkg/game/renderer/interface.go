package renderer

import "context"

// Renderer defines the interface for maze front ends.
// Implementations include TUI (terminal) and Ebiten.
type Renderer interface {
	// Init prepares colors, window settings and key bindings
	Init()

	// Run drives the session until the user quits or ctx is cancelled
	Run(ctx context.Context) error

	// Name identifies the renderer in logs and configuration
	Name() string
}
