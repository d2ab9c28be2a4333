package devtools

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"mazeworks/pkg/engine/world"
)

// TraceEvent is one recorded listener callback. State holds the cell symbol.
type TraceEvent struct {
	Kind    string `yaml:"kind"`
	Row     int    `yaml:"row,omitempty"`
	Col     int    `yaml:"col,omitempty"`
	State   string `yaml:"state,omitempty"`
	Success bool   `yaml:"success,omitempty"`
}

// Trace is a replayable record of a maze run
type Trace struct {
	RunID  string         `yaml:"run_id,omitempty"`
	Seed   int64          `yaml:"seed"`
	Rows   int            `yaml:"rows"`
	Cols   int            `yaml:"cols"`
	Start  world.Position `yaml:"start"`
	End    world.Position `yaml:"end"`
	Events []TraceEvent   `yaml:"events"`
}

// Tracer is a world.Listener that records events into a Trace
type Tracer struct {
	Trace *Trace
}

// NewTracer starts an empty trace for grid
func NewTracer(runID string, seed int64, grid *world.Grid) *Tracer {
	return &Tracer{Trace: &Trace{
		RunID: runID,
		Seed:  seed,
		Rows:  grid.Rows(),
		Cols:  grid.Cols(),
		Start: grid.Start(),
		End:   grid.End(),
	}}
}

func (t *Tracer) OnCellChanged(row, col int, state world.CellState) {
	t.Trace.Events = append(t.Trace.Events, TraceEvent{
		Kind:  world.EventCellChanged.String(),
		Row:   row,
		Col:   col,
		State: string(state.Symbol()),
	})
}

func (t *Tracer) OnGenerationComplete() {
	t.Trace.Events = append(t.Trace.Events, TraceEvent{Kind: world.EventGenerationComplete.String()})
}

func (t *Tracer) OnSolveComplete(success bool) {
	t.Trace.Events = append(t.Trace.Events, TraceEvent{Kind: world.EventSolveComplete.String(), Success: success})
}

// Event converts a recorded entry back into a world.Event
func (e TraceEvent) Event() (world.Event, error) {
	switch e.Kind {
	case world.EventCellChanged.String():
		runes := []rune(e.State)
		if len(runes) != 1 {
			return world.Event{}, fmt.Errorf("bad cell state %q", e.State)
		}
		s, ok := world.CellStateFromSymbol(runes[0])
		if !ok {
			return world.Event{}, fmt.Errorf("bad cell state %q", e.State)
		}
		return world.Event{Kind: world.EventCellChanged, Row: e.Row, Col: e.Col, State: s}, nil
	case world.EventGenerationComplete.String():
		return world.Event{Kind: world.EventGenerationComplete}, nil
	case world.EventSolveComplete.String():
		return world.Event{Kind: world.EventSolveComplete, Success: e.Success}, nil
	}
	return world.Event{}, fmt.Errorf("unknown event kind %q", e.Kind)
}

// Replay dispatches every recorded event to l in order
func (t *Trace) Replay(l world.Listener) error {
	for i, te := range t.Events {
		ev, err := te.Event()
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		ev.Dispatch(l)
	}
	return nil
}

// Grid rebuilds the final grid by applying every cell event
func (t *Trace) Grid() (*world.Grid, error) {
	grid, err := world.NewGridWithEndpoints(t.Rows, t.Cols, t.Start, t.End)
	if err != nil {
		return nil, err
	}
	for i, te := range t.Events {
		ev, err := te.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if ev.Kind != world.EventCellChanged {
			continue
		}
		if err := grid.Set(ev.Row, ev.Col, ev.State); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return grid, nil
}

// WriteTrace encodes t as YAML
func WriteTrace(w io.Writer, t *Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// ReadTrace decodes a YAML trace
func ReadTrace(r io.Reader) (*Trace, error) {
	var t Trace
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding trace: %w", err)
	}
	return &t, nil
}
