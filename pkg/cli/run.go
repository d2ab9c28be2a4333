package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mazeworks/pkg/engine/terminal"
	"mazeworks/pkg/game/config"
	"mazeworks/pkg/game/maze"
	"mazeworks/pkg/game/playback"
	"mazeworks/pkg/game/renderer"
	ebitenrenderer "mazeworks/pkg/game/renderer/ebiten"
	"mazeworks/pkg/game/renderer/tui"
)

// ErrNotInteractive is returned when the terminal renderer has no terminal
var ErrNotInteractive = errors.New(`the tui renderer needs a terminal; use "generate" for scripted output`)

// interactive reports whether stdin and stdout are both terminals
var interactive = terminal.IsInteractive

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive maze (default command)",
		Long: `Opens the configured renderer. Default keys: g generate, s solve, v cycle the
animation speed, space skip the animation, d dump the map, q quit.`,
		Args: cobra.NoArgs,
		RunE: a.runInteractive,
	}
}

// runInteractive drives the configured renderer until the user quits
func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	speed, err := playback.ParseSpeed(a.cfg.Speed)
	if err != nil {
		return err
	}
	if a.cfg.Renderer != config.RendererEbiten && !interactive() {
		return ErrNotInteractive
	}

	// The terminal renderer owns stdout and stderr
	if a.cfg.Renderer != config.RendererEbiten && a.cfg.LogFile == "" {
		a.log.SetOutput(io.Discard)
	}

	m, err := maze.New(a.cfg, maze.WithLogger(a.entry))
	if err != nil {
		return err
	}
	ctrl := renderer.NewController(m, speed, a.entry)

	var r renderer.Renderer
	switch a.cfg.Renderer {
	case config.RendererEbiten:
		r = ebitenrenderer.New(ctrl, a.entry)
	default:
		r = tui.New(ctrl)
	}
	r.Init()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.entry.WithField("renderer", r.Name()).Info("session started")
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("%s renderer: %w", r.Name(), err)
	}
	a.entry.Info("session ended")
	return nil
}
