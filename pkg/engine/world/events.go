package world

// Listener receives grid mutations as they happen. Calls are synchronous and
// arrive in mutation order; a listener must not start another generation or
// solve run on the same grid from inside a callback.
type Listener interface {
	// OnCellChanged is called once per Set, including no-op sets
	OnCellChanged(row, col int, state CellState)

	// OnGenerationComplete is called after a maze has been fully carved
	OnGenerationComplete()

	// OnSolveComplete is called after a search, with whether a path was found
	OnSolveComplete(success bool)
}

// NopListener ignores all events
type NopListener struct{}

func (NopListener) OnCellChanged(int, int, CellState) {}
func (NopListener) OnGenerationComplete()             {}
func (NopListener) OnSolveComplete(bool)              {}

// Listeners fans every event out to each listener in order
type Listeners []Listener

func (ls Listeners) OnCellChanged(row, col int, state CellState) {
	for _, l := range ls {
		l.OnCellChanged(row, col, state)
	}
}

func (ls Listeners) OnGenerationComplete() {
	for _, l := range ls {
		l.OnGenerationComplete()
	}
}

func (ls Listeners) OnSolveComplete(success bool) {
	for _, l := range ls {
		l.OnSolveComplete(success)
	}
}

// EventKind identifies which Listener callback produced an Event
type EventKind int

const (
	EventCellChanged EventKind = iota
	EventGenerationComplete
	EventSolveComplete
)

func (k EventKind) String() string {
	switch k {
	case EventCellChanged:
		return "CellChanged"
	case EventGenerationComplete:
		return "GenerationComplete"
	case EventSolveComplete:
		return "SolveComplete"
	default:
		return "Unknown"
	}
}

// Event is a recorded Listener callback
type Event struct {
	Kind    EventKind
	Row     int
	Col     int
	State   CellState
	Success bool
}

// Position returns the cell the event refers to
func (e Event) Position() Position {
	return Position{Row: e.Row, Col: e.Col}
}

// Dispatch replays the event onto l
func (e Event) Dispatch(l Listener) {
	switch e.Kind {
	case EventCellChanged:
		l.OnCellChanged(e.Row, e.Col, e.State)
	case EventGenerationComplete:
		l.OnGenerationComplete()
	case EventSolveComplete:
		l.OnSolveComplete(e.Success)
	}
}

// Recorder stores every event it receives
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnCellChanged(row, col int, state CellState) {
	r.Events = append(r.Events, Event{Kind: EventCellChanged, Row: row, Col: col, State: state})
}

func (r *Recorder) OnGenerationComplete() {
	r.Events = append(r.Events, Event{Kind: EventGenerationComplete})
}

func (r *Recorder) OnSolveComplete(success bool) {
	r.Events = append(r.Events, Event{Kind: EventSolveComplete, Success: success})
}

// CellEvents returns only the cell change events
func (r *Recorder) CellEvents() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == EventCellChanged {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops all recorded events
func (r *Recorder) Reset() {
	r.Events = nil
}
