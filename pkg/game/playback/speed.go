// Package playback buffers grid events on the renderer side and releases
// them at the selected animation speed. Timing never reaches the algorithms.
package playback

import (
	"fmt"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
)

// Speed is an animation playback rate
type Speed int

const (
	Instant Speed = iota
	Slow
	Medium
	Fast
	VeryFast
)

// speedCount is the number of speeds (for cycling)
const speedCount = 5

// VeryFastBatch is how many cell events VeryFast releases per Advance
const VeryFastBatch = 32

var speedDelays = [speedCount]time.Duration{
	0,
	100 * time.Millisecond,
	50 * time.Millisecond,
	10 * time.Millisecond,
	0,
}

var speedNames = [speedCount]string{"instant", "slow", "medium", "fast", "very-fast"}

var speedLabels = [speedCount]string{"Instant", "Slow", "Medium", "Fast", "Very Fast"}

// AllSpeeds returns every speed in cycling order
func AllSpeeds() []Speed {
	return []Speed{Instant, Slow, Medium, Fast, VeryFast}
}

// ParseSpeed converts a configuration name such as "very-fast" to a Speed
func ParseSpeed(name string) (Speed, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range speedNames {
		if n == name {
			return Speed(i), nil
		}
	}
	return Medium, fmt.Errorf("unknown speed %q", name)
}

func (s Speed) valid() bool {
	return s >= Instant && s <= VeryFast
}

// Delay returns the pause between two cell events at this speed
func (s Speed) Delay() time.Duration {
	if !s.valid() {
		return 0
	}
	return speedDelays[s]
}

// Next returns the following speed, wrapping around
func (s Speed) Next() Speed {
	return Speed((int(s) + 1) % speedCount)
}

// String returns the configuration name
func (s Speed) String() string {
	if !s.valid() {
		return fmt.Sprintf("Speed(%d)", int(s))
	}
	return speedNames[s]
}

// Label returns the translated display label
func (s Speed) Label() string {
	if !s.valid() {
		return s.String()
	}
	return gotext.Get(speedLabels[s])
}

// StatusLine returns the translated "Animation Speed" status text
func (s Speed) StatusLine() string {
	return gotext.Get("Animation Speed: %s", s.Label())
}
