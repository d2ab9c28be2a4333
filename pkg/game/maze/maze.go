// Package maze is the driver-facing entry point: it owns one grid, runs
// generation and search on it, and forwards every change to subscribers.
package maze

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"mazeworks/pkg/engine/world"
	"mazeworks/pkg/game/config"
	"mazeworks/pkg/game/generator"
	"mazeworks/pkg/game/solver"
)

// ErrBusy is returned when a run is started from inside a listener callback
// of another run on the same maze.
var ErrBusy = errors.New("maze: a generation or solve run is already in progress")

// ChooserFactory builds the random source for a generation run
type ChooserFactory func(seed int64) generator.Chooser

// Option configures a Maze
type Option func(*Maze)

// WithLogger sets the logger used for phase start/finish messages
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Maze) {
		m.log = l
	}
}

// WithChooserFactory replaces the default seeded math/rand chooser
func WithChooserFactory(f ChooserFactory) Option {
	return func(m *Maze) {
		m.newChooser = f
	}
}

// Maze holds a grid and the state of the last generation and search
type Maze struct {
	cfg  config.Config
	grid *world.Grid
	hub  *hub

	newChooser ChooserFactory
	log        logrus.FieldLogger

	seed      int64
	generated bool
	result    solver.Result
	busy      bool
}

// hub forwards grid events to the current subscribers
type hub struct {
	listeners world.Listeners
}

func (h *hub) OnCellChanged(row, col int, state world.CellState) {
	h.listeners.OnCellChanged(row, col, state)
}

func (h *hub) OnGenerationComplete() {
	h.listeners.OnGenerationComplete()
}

func (h *hub) OnSolveComplete(success bool) {
	h.listeners.OnSolveComplete(success)
}

// New creates a maze with a wall-filled grid for cfg
func New(cfg config.Config, opts ...Option) (*Maze, error) {
	grid, err := cfg.NewGrid()
	if err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := &Maze{
		cfg:        cfg,
		grid:       grid,
		hub:        &hub{},
		newChooser: generator.NewSeededChooser,
		log:        discard,
	}
	for _, opt := range opts {
		opt(m)
	}
	grid.SetListener(m.hub)
	return m, nil
}

// Subscribe adds l to the listeners notified of every change
func (m *Maze) Subscribe(l world.Listener) {
	m.hub.listeners = append(m.hub.listeners, l)
}

// Config returns the active configuration
func (m *Maze) Config() config.Config {
	return m.cfg
}

// Grid returns the grid. Callers must treat it as read-only.
func (m *Maze) Grid() *world.Grid {
	return m.grid
}

// Seed returns the seed used by the last generation
func (m *Maze) Seed() int64 {
	return m.seed
}

// Generated reports whether a maze has been carved
func (m *Maze) Generated() bool {
	return m.generated
}

// CellState returns the state of a single cell
func (m *Maze) CellState(row, col int) (world.CellState, error) {
	return m.grid.Get(row, col)
}

// Generate resets the grid and carves a new maze. A seed <= 0 picks a
// time-based seed; Seed reports the one used.
func (m *Maze) Generate(seed int64) error {
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	defer func() { m.busy = false }()

	if seed <= 0 {
		seed = time.Now().UnixNano()
	}

	gen := generator.NewPrim(m.newChooser(seed))
	log := m.log.WithFields(logrus.Fields{
		"seed":      seed,
		"rows":      m.grid.Rows(),
		"cols":      m.grid.Cols(),
		"generator": gen.Name(),
	})
	log.Debug("generating maze")

	began := time.Now()
	if err := gen.Generate(m.grid); err != nil {
		log.WithError(err).Error("maze generation failed")
		return fmt.Errorf("generating maze: %w", err)
	}

	m.seed = seed
	m.generated = true
	m.result = solver.Result{}

	log.WithField("elapsed", time.Since(began)).Info("maze generated")
	m.hub.OnGenerationComplete()
	return nil
}

// Regenerate switches to cfg and generates. An invalid cfg is rejected
// before anything is touched.
func (m *Maze) Regenerate(cfg config.Config, seed int64) error {
	if m.busy {
		return ErrBusy
	}
	grid, err := cfg.NewGrid()
	if err != nil {
		m.log.WithError(err).Warn("rejected maze configuration")
		return err
	}

	previous, previousCfg := m.grid, m.cfg
	m.grid.SetListener(nil)
	grid.SetListener(m.hub)
	m.grid, m.cfg = grid, cfg
	m.generated = false

	if err := m.Generate(seed); err != nil {
		grid.SetListener(nil)
		previous.SetListener(m.hub)
		m.grid, m.cfg = previous, previousCfg
		return err
	}
	return nil
}

// Solve searches from start to end and reports whether a path exists.
// Not finding a path is a normal outcome, not an error.
func (m *Maze) Solve() bool {
	res, err := m.SolveResult()
	if err != nil {
		m.log.WithError(err).Warn("solve not started")
		return false
	}
	return res.Found
}

// SolveResult is Solve returning the full search result
func (m *Maze) SolveResult() (solver.Result, error) {
	if m.busy {
		return solver.Result{}, ErrBusy
	}
	m.busy = true
	defer func() { m.busy = false }()

	pf := solver.New()
	log := m.log.WithFields(logrus.Fields{
		"seed":   m.seed,
		"start":  m.grid.Start().String(),
		"end":    m.grid.End().String(),
		"solver": pf.Name(),
	})
	if !m.generated {
		log.Warn("solving a grid that has not been generated")
	}

	began := time.Now()
	res := pf.Solve(m.grid)
	m.result = res

	log.WithFields(logrus.Fields{
		"found":    res.Found,
		"path_len": res.Length(),
		"explored": res.Explored,
		"elapsed":  time.Since(began),
	}).Info("maze solved")

	m.hub.OnSolveComplete(res.Found)
	return res, nil
}

// Path returns the last solution path, start to end inclusive
func (m *Maze) Path() []world.Position {
	return m.result.Path
}
