package renderer

import (
	"strings"

	"mazeworks/pkg/engine/input"
)

// HelpEntry is one key hint. Label is a translation key.
type HelpEntry struct {
	Key   string
	Label string
}

var helpActions = []HelpEntry{
	{Label: "generate"},
	{Label: "solve"},
	{Label: "speed"},
	{Label: "skip"},
	{Label: "dump"},
	{Label: "quit"},
}

// Help lists the key currently bound to each action, in display order.
// Actions with no key are left out.
func Help() []HelpEntry {
	out := make([]HelpEntry, 0, len(helpActions))
	for _, h := range helpActions {
		act, _ := input.ParseAction(h.Label)
		if key := input.KeyFor(act); key != "" {
			out = append(out, HelpEntry{Key: key, Label: h.Label})
		}
	}
	return out
}

// HelpText renders Help as one line, translating labels with translate
func HelpText(translate func(string) string) string {
	parts := make([]string, 0, len(helpActions))
	for _, h := range Help() {
		parts = append(parts, strings.ToUpper(h.Key)+" "+translate(h.Label))
	}
	return strings.Join(parts, "  ")
}
