// Package config holds the user-facing settings for a maze session.
package config

import (
	"fmt"
	"strings"

	"mazeworks/pkg/engine/world"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Speed names accepted in configuration
var SpeedNames = []string{"instant", "slow", "medium", "fast", "very-fast"}

// Config is the complete session configuration. Zero endpoints mean the
// defaults (1,1) and (rows-2, cols-2).
type Config struct {
	Rows     int            `mapstructure:"rows" yaml:"rows"`
	Cols     int            `mapstructure:"cols" yaml:"cols"`
	Start    world.Position `mapstructure:"start" yaml:"start"`
	End      world.Position `mapstructure:"end" yaml:"end"`
	Seed     int64          `mapstructure:"seed" yaml:"seed"`
	Speed    string         `mapstructure:"speed" yaml:"speed"`
	Renderer string         `mapstructure:"renderer" yaml:"renderer"`
	LogLevel string         `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string         `mapstructure:"log_file" yaml:"log_file"`
	DumpDir  string         `mapstructure:"dump_dir" yaml:"dump_dir"`
	Locale   string         `mapstructure:"locale" yaml:"locale"`

	// Bindings maps action names (generate, solve, speed, skip, dump, quit)
	// to a replacement key
	Bindings map[string]string `mapstructure:"bindings" yaml:"bindings,omitempty"`
}

// Defaults returns the 21x31 board with default endpoints
func Defaults() Config {
	return Config{
		Rows:     21,
		Cols:     31,
		Speed:    "medium",
		Renderer: RendererTUI,
		LogLevel: "info",
		DumpDir:  ".",
		Locale:   "en_US",
	}
}

// Endpoints returns the configured start and end, filling in the defaults
// for whichever is unset.
func (c Config) Endpoints() (start, end world.Position) {
	start, end = world.DefaultEndpoints(c.Rows, c.Cols)
	if c.Start != (world.Position{}) {
		start = c.Start
	}
	if c.End != (world.Position{}) {
		end = c.End
	}
	return start, end
}

// Validate checks dimensions, endpoints and enumerated settings
func (c Config) Validate() error {
	if err := world.ValidateDimensions(c.Rows, c.Cols); err != nil {
		return err
	}
	start, end := c.Endpoints()
	if err := world.ValidateEndpoints(c.Rows, c.Cols, start, end); err != nil {
		return err
	}
	if c.Speed != "" && !contains(SpeedNames, c.Speed) {
		return fmt.Errorf("unknown speed %q (want one of %s)", c.Speed, strings.Join(SpeedNames, ", "))
	}
	switch c.Renderer {
	case "", RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("unknown renderer %q (want %s or %s)", c.Renderer, RendererTUI, RendererEbiten)
	}
	return nil
}

// NewGrid builds a wall-filled grid for this configuration
func (c Config) NewGrid() (*world.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	start, end := c.Endpoints()
	return world.NewGridWithEndpoints(c.Rows, c.Cols, start, end)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
