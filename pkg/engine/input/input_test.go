package input

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadKey_Codes(t *testing.T) {
	in := "g\r\t \x03\x1b[A\x1b[DS"
	k := NewKeyReader(strings.NewReader(in))

	want := []string{"g", "enter", "tab", "space", "ctrl_c", "arrow_up", "arrow_left", "S"}
	for i, w := range want {
		got, err := k.ReadKey()
		if err != nil {
			t.Fatalf("key %d: ReadKey error = %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %q, want %q", i, got, w)
		}
	}
	if _, err := k.ReadKey(); err != io.EOF {
		t.Errorf("ReadKey at end error = %v, want io.EOF", err)
	}
}

func TestReadKey_EscapeKeepsNextKey(t *testing.T) {
	k := NewKeyReader(strings.NewReader("\x1bq\x1b"))

	want := []string{"escape", "q", "escape"}
	for i, w := range want {
		got, err := k.ReadKey()
		if err != nil {
			t.Fatalf("key %d: ReadKey error = %v", i, err)
		}
		if got != w {
			t.Errorf("key %d = %q, want %q", i, got, w)
		}
	}
}

func TestReadKey_LoneEscapeDoesNotWait(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() { _, _ = pw.Write([]byte{0x1b}) }()

	done := make(chan string, 1)
	go func() {
		code, _ := NewKeyReader(pr).ReadKey()
		done <- code
	}()

	select {
	case code := <-done:
		if code != "escape" {
			t.Errorf("ReadKey = %q, want %q", code, "escape")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadKey waited for a second key after a lone escape")
	}
}

func TestEnterRaw_NonTerminal(t *testing.T) {
	k := NewKeyReader(strings.NewReader("g"))
	restore, err := k.EnterRaw()
	if err != nil {
		t.Fatalf("EnterRaw error = %v", err)
	}
	restore()
	k.Interrupt()
	if got, _ := k.ReadKey(); got != "g" {
		t.Errorf("ReadKey = %q, want %q", got, "g")
	}
}

func TestReadIntent(t *testing.T) {
	k := NewKeyReader(strings.NewReader("gsvqx"))
	want := []Action{ActionGenerate, ActionSolve, ActionCycleSpeed, ActionQuit, ActionNone}
	for i, w := range want {
		got, err := k.ReadIntent()
		if err != nil {
			t.Fatalf("intent %d: error = %v", i, err)
		}
		if got.Action != w {
			t.Errorf("intent %d = %s, want %s", i, ActionName(got.Action), ActionName(w))
		}
	}
}

func TestIntentFor_NormalisesDeviceCodes(t *testing.T) {
	cases := map[string]Action{
		"KeyG":   ActionGenerate,
		"G":      ActionGenerate,
		"S":      ActionSolve,
		"Space":  ActionSkip,
		"Escape": ActionQuit,
		"Tab":    ActionCycleSpeed,
		"F1":     ActionNone,
	}
	for code, want := range cases {
		if got := IntentFor(DeviceKeyboard, code).Action; got != want {
			t.Errorf("IntentFor(%q) = %s, want %s", code, ActionName(got), ActionName(want))
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	SetSingleBinding(ActionQuit, "x")
	byAction := GetBindingsByAction()
	codes := strings.Join(byAction[ActionQuit], ",")
	if codes != "ctrl_c,escape,x" {
		t.Errorf("quit bindings = %q, want %q", codes, "ctrl_c,escape,x")
	}
	if IntentFor(DeviceTerminal, "q").Action != ActionNone {
		t.Error("old quit binding still active")
	}
}

func TestApplyBindings(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	if err := ApplyBindings(map[string]string{"generate": "n", "bogus": "x"}); err == nil {
		t.Fatal("ApplyBindings with unknown action succeeded")
	}
	if IntentFor(DeviceTerminal, "n").Action != ActionNone {
		t.Error("bindings changed despite the error")
	}

	if err := ApplyBindings(map[string]string{"Generate": "n", "speed": "Tab"}); err != nil {
		t.Fatalf("ApplyBindings error = %v", err)
	}
	if got := IntentFor(DeviceTerminal, "n").Action; got != ActionGenerate {
		t.Errorf("n = %s, want %s", ActionName(got), ActionName(ActionGenerate))
	}
	if got := IntentFor(DeviceTerminal, "g").Action; got != ActionNone {
		t.Errorf("g = %s, want None after rebinding", ActionName(got))
	}
	if got := IntentFor(DeviceTerminal, "tab").Action; got != ActionCycleSpeed {
		t.Errorf("tab = %s, want %s", ActionName(got), ActionName(ActionCycleSpeed))
	}
}

func TestKeyFor_FollowsBindings(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	defer func() { bindings = saved }()

	want := map[Action]string{
		ActionGenerate:   "g",
		ActionSolve:      "s",
		ActionCycleSpeed: "v",
		ActionSkip:       "space",
		ActionDump:       "d",
		ActionQuit:       "q",
		ActionNone:       "",
	}
	for act, key := range want {
		if got := KeyFor(act); got != key {
			t.Errorf("KeyFor(%s) = %q, want %q", ActionName(act), got, key)
		}
	}

	if err := ApplyBindings(map[string]string{"generate": "n", "quit": "x"}); err != nil {
		t.Fatalf("ApplyBindings error = %v", err)
	}
	if got := KeyFor(ActionGenerate); got != "n" {
		t.Errorf("KeyFor(generate) = %q after rebinding, want %q", got, "n")
	}
	if got := KeyFor(ActionQuit); got != "x" {
		t.Errorf("KeyFor(quit) = %q after rebinding, want %q", got, "x")
	}
}
