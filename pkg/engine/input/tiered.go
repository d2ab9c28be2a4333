package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent of the person driving the maze.
type Action int

const (
	ActionNone Action = iota

	ActionGenerate   // Carve a new maze
	ActionSolve      // Run the search on the current maze
	ActionCycleSpeed // Switch to the next animation speed
	ActionSkip       // Jump to the end of the running animation
	ActionDump       // Write the current grid to disk
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "g", "KeyG", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event. Codes are
// lower-cased so "KeyG" and "g" normalise the same way.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	code := strings.ToLower(raw.Code)
	code = strings.TrimPrefix(code, "key")
	return DebouncedInput{
		Device: raw.Device,
		Code:   code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"g":        ActionGenerate,
	"generate": ActionGenerate,

	"s":     ActionSolve,
	"solve": ActionSolve,
	"enter": ActionSolve,

	"v":     ActionCycleSpeed,
	"speed": ActionCycleSpeed,
	"tab":   ActionCycleSpeed,

	"space": ActionSkip,
	" ":     ActionSkip,

	"d":    ActionDump,
	"dump": ActionDump,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a raw code through all layers
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionGenerate:
		return "Generate Maze"
	case ActionSolve:
		return "Solve Maze"
	case ActionCycleSpeed:
		return "Change Speed"
	case ActionSkip:
		return "Skip Animation"
	case ActionDump:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// KeyFor returns the key to advertise for an action: the shortest bound
// code, with the space bar reported as "space". Empty when nothing is bound.
func KeyFor(action Action) string {
	best := ""
	for _, code := range GetBindingsByAction()[action] {
		if code == " " {
			code = "space"
		}
		if best == "" || len(code) < len(best) {
			best = code
		}
	}
	return best
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Quit keeps "escape" and "ctrl_c" so the user can always leave.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "escape" || c == "ctrl_c" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && code != "escape" && code != "ctrl_c" {
		bindings[strings.ToLower(code)] = action
	}
}

// actionKeys are the configuration names of the rebindable actions
var actionKeys = map[string]Action{
	"generate": ActionGenerate,
	"solve":    ActionSolve,
	"speed":    ActionCycleSpeed,
	"skip":     ActionSkip,
	"dump":     ActionDump,
	"quit":     ActionQuit,
}

// ParseAction looks up an action by its configuration name
func ParseAction(name string) (Action, bool) {
	act, ok := actionKeys[strings.ToLower(strings.TrimSpace(name))]
	return act, ok
}

// ApplyBindings rebinds each named action to its single key code.
// Unknown action names are rejected before anything changes.
func ApplyBindings(keys map[string]string) error {
	for name := range keys {
		if _, ok := ParseAction(name); !ok {
			return fmt.Errorf("unknown action %q in key bindings", name)
		}
	}
	for name, code := range keys {
		act, _ := ParseAction(name)
		SetSingleBinding(act, code)
	}
	return nil
}
