package playback

import (
	"time"

	"mazeworks/pkg/engine/world"
)

// Player is a world.Listener that queues events for animated playback.
// Phase-complete events ride along with the cell event before them and do
// not use up playback time.
type Player struct {
	speed   Speed
	pending []world.Event
	carry   time.Duration
}

// NewPlayer creates an empty player at the given speed. An unknown speed
// plays as Instant.
func NewPlayer(speed Speed) *Player {
	p := &Player{}
	p.SetSpeed(speed)
	return p
}

func (p *Player) OnCellChanged(row, col int, state world.CellState) {
	p.pending = append(p.pending, world.Event{Kind: world.EventCellChanged, Row: row, Col: col, State: state})
}

func (p *Player) OnGenerationComplete() {
	p.pending = append(p.pending, world.Event{Kind: world.EventGenerationComplete})
}

func (p *Player) OnSolveComplete(success bool) {
	p.pending = append(p.pending, world.Event{Kind: world.EventSolveComplete, Success: success})
}

// Speed returns the current playback speed
func (p *Player) Speed() Speed {
	return p.speed
}

// SetSpeed changes the playback speed; leftover time is dropped. An
// unknown speed plays as Instant.
func (p *Player) SetSpeed(s Speed) {
	if !s.valid() {
		s = Instant
	}
	p.speed = s
	p.carry = 0
}

// CycleSpeed advances to the next speed and returns it
func (p *Player) CycleSpeed() Speed {
	p.SetSpeed(p.speed.Next())
	return p.speed
}

// Pending returns the number of queued events
func (p *Player) Pending() int {
	return len(p.pending)
}

// Busy reports whether anything is left to play
func (p *Player) Busy() bool {
	return len(p.pending) > 0
}

// Advance releases the events due after dt has elapsed
func (p *Player) Advance(dt time.Duration) []world.Event {
	if len(p.pending) == 0 {
		p.carry = 0
		return nil
	}
	switch p.speed {
	case Instant:
		return p.Flush()
	case VeryFast:
		return p.take(VeryFastBatch)
	}

	delay := p.speed.Delay()
	p.carry += dt
	n := int(p.carry / delay)
	p.carry -= time.Duration(n) * delay
	return p.take(n)
}

// Flush releases everything queued
func (p *Player) Flush() []world.Event {
	out := p.pending
	p.pending = nil
	p.carry = 0
	return out
}

// Discard drops everything queued and returns how many events were dropped.
// This is how a driver cancels an animation; the algorithm has already run.
func (p *Player) Discard() int {
	n := len(p.pending)
	p.pending = nil
	p.carry = 0
	return n
}

// take releases up to n cell events plus any completion events that follow them
func (p *Player) take(n int) []world.Event {
	i, cells := 0, 0
	for i < len(p.pending) {
		if p.pending[i].Kind == world.EventCellChanged {
			if cells == n {
				break
			}
			cells++
		}
		i++
	}
	out := make([]world.Event, i)
	copy(out, p.pending[:i])
	p.pending = p.pending[i:]
	return out
}
