package renderer

import (
	"errors"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazeworks/pkg/engine/input"
	"mazeworks/pkg/engine/world"
	"mazeworks/pkg/game/devtools"
	"mazeworks/pkg/game/maze"
	"mazeworks/pkg/game/playback"
)

// Controller turns intents into maze runs and keeps a display copy of the
// grid that only changes as the player releases events. Renderers draw the
// display grid, never the maze grid.
type Controller struct {
	maze    *maze.Maze
	player  *playback.Player
	display *world.Grid
	log     logrus.FieldLogger

	dumpDir   string
	firstSeed int64
	started   bool

	status string
	redraw bool
}

// NewController subscribes a player to m and mirrors m's current grid
func NewController(m *maze.Maze, speed playback.Speed, log logrus.FieldLogger) *Controller {
	c := &Controller{
		maze:      m,
		player:    playback.NewPlayer(speed),
		display:   m.Grid().Clone(),
		log:       log,
		dumpDir:   m.Config().DumpDir,
		firstSeed: m.Config().Seed,
		redraw:    true,
	}
	m.Subscribe(c.player)
	c.status = speed.StatusLine()
	return c
}

// Display returns the grid as currently shown
func (c *Controller) Display() *world.Grid {
	return c.display
}

// Player returns the playback buffer
func (c *Controller) Player() *playback.Player {
	return c.player
}

// Maze returns the driven maze
func (c *Controller) Maze() *maze.Maze {
	return c.maze
}

// Status returns the latest status line
func (c *Controller) Status() string {
	return c.status
}

// NeedsRedraw reports, once, that the whole display changed at once
func (c *Controller) NeedsRedraw() bool {
	r := c.redraw
	c.redraw = false
	return r
}

// Handle applies one intent and reports whether the session should end
func (c *Controller) Handle(in input.Intent) (quit bool) {
	switch in.Action {
	case input.ActionGenerate:
		c.finishAnimation()
		seed := int64(0)
		if !c.started {
			seed = c.firstSeed
			c.started = true
		}
		if err := c.maze.Generate(seed); err != nil {
			c.fail(err)
		}
	case input.ActionSolve:
		c.finishAnimation()
		if !c.maze.Generated() {
			c.status = gotext.Get("Generate a maze first")
			return false
		}
		if _, err := c.maze.SolveResult(); err != nil {
			c.fail(err)
		}
	case input.ActionCycleSpeed:
		c.status = c.player.CycleSpeed().StatusLine()
	case input.ActionSkip:
		c.finishAnimation()
	case input.ActionDump:
		path, err := devtools.DumpMapToFile(c.dumpDir, c.maze)
		if err != nil {
			c.fail(err)
			return false
		}
		c.log.WithField("path", path).Info("map dumped")
		c.status = gotext.Get("Map written to %s", path)
	case input.ActionQuit:
		return true
	}
	return false
}

// Step releases the events due after dt, applies them to the display and
// returns them in order.
func (c *Controller) Step(dt time.Duration) []world.Event {
	evs := c.player.Advance(dt)
	c.apply(evs)
	return evs
}

// finishAnimation applies everything still queued in one go
func (c *Controller) finishAnimation() {
	evs := c.player.Flush()
	if len(evs) == 0 {
		return
	}
	c.apply(evs)
	c.redraw = true
}

func (c *Controller) apply(evs []world.Event) {
	for _, ev := range evs {
		switch ev.Kind {
		case world.EventCellChanged:
			if err := c.display.Set(ev.Row, ev.Col, ev.State); err != nil {
				c.log.WithError(err).Warn("dropping event outside the display")
			}
		case world.EventGenerationComplete:
			c.status = gotext.Get("Maze generated (seed %d)", c.maze.Seed())
		case world.EventSolveComplete:
			if ev.Success {
				c.status = gotext.Get("Path found: %d steps", len(c.maze.Path())-1)
			} else {
				c.status = gotext.Get("No path found")
			}
		}
	}
}

func (c *Controller) fail(err error) {
	if errors.Is(err, maze.ErrBusy) {
		c.status = gotext.Get("Busy, try again")
		return
	}
	c.log.WithError(err).Error("maze run failed")
	c.status = gotext.Get("Error: %s", err.Error())
}
