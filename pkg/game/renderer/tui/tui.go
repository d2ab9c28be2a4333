package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"mazeworks/pkg/engine/input"
	"mazeworks/pkg/engine/terminal"
	"mazeworks/pkg/engine/world"
	"mazeworks/pkg/game/renderer"
)

// CellWidth is how many terminal columns one grid cell occupies
const CellWidth = 2

// Lines needed outside the grid:
// - Title (1)
// - Status line (1)
// - Help line (1)
const reservedLines = 3

// frameInterval is how often pending events are released
const frameInterval = 10 * time.Millisecond

// ErrTerminalTooSmall is returned when the grid cannot be drawn
var ErrTerminalTooSmall = errors.New("terminal too small for this maze")

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	ctrl *renderer.Controller
	out  io.Writer
	in   io.Reader
	size func() (width, height int)

	cellStyles  map[world.CellState]color.Style
	colorTitle  color.Style
	colorStatus color.Style
	colorAction color.Style
	colorShort  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer on stdin/stdout
func New(ctrl *renderer.Controller) *TUIRenderer {
	return &TUIRenderer{ctrl: ctrl, out: os.Stdout, in: os.Stdin, size: terminal.GetSize}
}

// Name identifies the renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.cellStyles = map[world.CellState]color.Style{
		world.Wall:         {color.BgBlack},
		world.Passage:      {color.BgWhite},
		world.Start:        {color.BgGreen},
		world.End:          {color.BgRed},
		world.Visited:      {color.BgCyan},
		world.Frontier:     {color.BgYellow},
		world.SolutionPath: {color.BgMagenta},
	}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorStatus = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorShort = color.Style{color.FgMagenta, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// RenderCell returns the styled two-column block for a state
func (t *TUIRenderer) RenderCell(s world.CellState) string {
	style, ok := t.cellStyles[s]
	if !ok {
		return strings.Repeat(string(s.Symbol()), CellWidth)
	}
	return style.Sprint(strings.Repeat(" ", CellWidth))
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.colorShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// Run draws the maze and processes keys until quit or ctx is done
func (t *TUIRenderer) Run(ctx context.Context) error {
	grid := t.ctrl.Display()
	width, height := t.size()
	if !terminal.FitsGrid(width, height, grid.Rows(), grid.Cols(), CellWidth, reservedLines) {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall,
			grid.Cols()*CellWidth, grid.Rows()+reservedLines, width, height)
	}

	keys := input.NewKeyReader(t.in)
	restore, err := keys.EnterRaw()
	if err != nil {
		return err
	}
	defer restore()
	defer keys.Interrupt()
	fmt.Fprint(t.out, "\x1b[?25l")
	defer fmt.Fprint(t.out, "\x1b[?25h\x1b[0m\r\n")

	intents := make(chan input.Intent)
	go t.readKeys(ctx, keys, intents)

	t.ctrl.Handle(input.Intent{Action: input.ActionGenerate})
	t.flush()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case in, ok := <-intents:
			if !ok || t.ctrl.Handle(in) {
				return nil
			}
			t.flush()
		case now := <-ticker.C:
			evs := t.ctrl.Step(now.Sub(last))
			last = now
			t.drawEvents(evs)
			t.flush()
		}
	}
}

// readKeys forwards key presses as intents until the reader fails
func (t *TUIRenderer) readKeys(ctx context.Context, keys *input.KeyReader, out chan<- input.Intent) {
	defer close(out)
	for {
		in, err := keys.ReadIntent()
		if err != nil {
			return
		}
		if in.Action == input.ActionNone {
			continue
		}
		select {
		case out <- in:
		case <-ctx.Done():
			return
		}
	}
}

// flush redraws whatever changed outside of event playback
func (t *TUIRenderer) flush() {
	if t.ctrl.NeedsRedraw() {
		t.drawFrame()
		return
	}
	t.drawStatus()
}

// drawFrame clears the screen and draws title, grid, status and help
func (t *TUIRenderer) drawFrame() {
	var b strings.Builder
	b.WriteString("\x1b[2J\x1b[H")
	b.WriteString(t.colorTitle.Sprint(gotext.Get("Maze Generator & Solver")))
	b.WriteString("\r\n")

	grid := t.ctrl.Display()
	for row := 0; row < grid.Rows(); row++ {
		b.WriteString(moveTo(row, 0))
		for col := 0; col < grid.Cols(); col++ {
			b.WriteString(t.RenderCell(grid.State(row, col)))
		}
	}
	fmt.Fprint(t.out, b.String())

	t.drawStatus()
	fmt.Fprint(t.out, moveToLine(grid.Rows()+3)+t.helpLine())
}

// drawEvents paints each changed cell in place
func (t *TUIRenderer) drawEvents(evs []world.Event) {
	if len(evs) == 0 {
		return
	}
	var b strings.Builder
	for _, ev := range evs {
		if ev.Kind != world.EventCellChanged {
			continue
		}
		b.WriteString(moveTo(ev.Row, ev.Col))
		b.WriteString(t.RenderCell(ev.State))
	}
	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) drawStatus() {
	line := moveToLine(t.ctrl.Display().Rows()+2) + "\x1b[2K" + t.colorStatus.Sprint(t.ctrl.Status())
	fmt.Fprint(t.out, line)
}

// helpLine lists the bound keys, so rebinding in config shows up here
func (t *TUIRenderer) helpLine() string {
	help := renderer.Help()
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, t.colorShort.Sprint(h.Key)+" "+t.FormatText("GT{%s}", h.Label))
	}
	return strings.Join(parts, "  ")
}

// moveTo positions the cursor on a grid cell; the grid starts on line 2
func moveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+2, col*CellWidth+1)
}

// moveToLine positions the cursor at the start of a 1-based line
func moveToLine(line int) string {
	return fmt.Sprintf("\x1b[%d;1H", line)
}
