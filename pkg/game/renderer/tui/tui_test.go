package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"mazeworks/pkg/engine/terminal"
	"mazeworks/pkg/engine/world"
	"mazeworks/pkg/game/config"
	"mazeworks/pkg/game/maze"
	"mazeworks/pkg/game/playback"
	"mazeworks/pkg/game/renderer"
)

func plainColors(t *testing.T) {
	t.Helper()
	prev := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = prev })
}

func newRenderer(t *testing.T, rows, cols int) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	cfg := config.Defaults()
	cfg.Rows, cfg.Cols = rows, cols
	m, err := maze.New(cfg)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	r := New(renderer.NewController(m, playback.Instant, log))
	var out bytes.Buffer
	r.out = &out
	r.in = strings.NewReader("")
	r.size = func() (int, int) { return terminal.DefaultWidth, terminal.DefaultHeight }
	r.Init()
	return r, &out
}

func TestRenderCell_EveryStateIsTwoColumns(t *testing.T) {
	plainColors(t)
	r, _ := newRenderer(t, 5, 5)
	for _, s := range world.AllCellStates() {
		if got := r.RenderCell(s); got != "  " {
			t.Errorf("RenderCell(%s) = %q, want two spaces", s, got)
		}
	}
	if got := r.RenderCell(world.CellState(42)); got != "??" {
		t.Errorf("RenderCell(unknown) = %q, want %q", got, "??")
	}
}

func TestFormatText(t *testing.T) {
	plainColors(t)
	r, _ := newRenderer(t, 5, 5)

	if got := r.FormatText("press ACTION{%s}", "quit"); got != "press quit" {
		t.Errorf("FormatText = %q, want %q", got, "press quit")
	}
	if got := r.FormatText("GT{speed}"); got != "speed" {
		t.Errorf("FormatText(GT) = %q, want %q", got, "speed")
	}
	if got := r.FormatText("NOPE{x}"); !strings.Contains(got, "function not found") {
		t.Errorf("FormatText(unknown) = %q, want an error marker", got)
	}
}

func TestRun_RefusesOversizedGrid(t *testing.T) {
	r, _ := newRenderer(t, 101, 301)
	err := r.Run(context.Background())
	if !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("Run error = %v, want ErrTerminalTooSmall", err)
	}
}

func TestRun_QuitsWhenInputEnds(t *testing.T) {
	plainColors(t)
	r, out := newRenderer(t, 5, 5)
	r.in = strings.NewReader("q")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[?25h") {
		t.Error("cursor was not restored on exit")
	}
	if !strings.Contains(out.String(), "g generate  s solve") {
		t.Error("help line missing from the frame")
	}
}

func TestRun_DefaultBoardFitsDefaultTerminal(t *testing.T) {
	plainColors(t)
	d := config.Defaults()
	r, out := newRenderer(t, d.Rows, d.Cols)
	r.in = strings.NewReader("q")

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run(%dx%d) in %dx%d error = %v", d.Rows, d.Cols, terminal.DefaultWidth, terminal.DefaultHeight, err)
	}
	// Help goes on the last line of the frame
	if !strings.Contains(out.String(), fmt.Sprintf("\x1b[%d;1H", d.Rows+reservedLines)) {
		t.Errorf("frame does not end on line %d", d.Rows+reservedLines)
	}
}
