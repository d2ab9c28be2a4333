package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode
type KeyReader struct {
	src io.Reader
	in  *bufio.Reader
	fd  int
}

// NewKeyReader reads keys from r. When r is a terminal, EnterRaw switches
// it to raw mode; any other reader is used as is.
func NewKeyReader(r io.Reader) *KeyReader {
	k := &KeyReader{src: r, in: bufio.NewReader(r), fd: -1}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		k.fd = int(f.Fd())
	}
	return k
}

// EnterRaw puts the terminal in raw mode and returns the function that
// restores it. Non-terminal readers get a no-op.
func (k *KeyReader) EnterRaw() (restore func(), err error) {
	if k.fd < 0 {
		return func() {}, nil
	}
	oldState, err := term.MakeRaw(k.fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() { _ = term.Restore(k.fd, oldState) }, nil
}

// Interrupt unblocks a pending read when the source supports read deadlines
func (k *KeyReader) Interrupt() {
	if d, ok := k.src.(interface{ SetReadDeadline(time.Time) error }); ok {
		_ = d.SetReadDeadline(time.Now())
	}
}

// ReadKey blocks until one key is pressed and returns its code: the
// printable character itself, or "enter", "tab", "escape", "ctrl_c",
// "space" and "arrow_*" for special keys.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.in.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 3:
		return "ctrl_c", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b == '\t':
		return "tab", nil
	case b == ' ':
		return "space", nil
	case b == 0x1b:
		return k.readEscape()
	case b >= 32 && b < 127:
		return string(b), nil
	default:
		return "", nil
	}
}

// ReadIntent reads one key and maps it to an Intent
func (k *KeyReader) ReadIntent() (Intent, error) {
	code, err := k.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return IntentFor(DeviceTerminal, code), nil
}

// readEscape decodes the rest of an escape sequence. A terminal delivers a
// whole sequence in one read, so an ESC with nothing buffered behind it is
// the escape key itself. Bytes that do not continue a sequence are left
// for the next ReadKey.
func (k *KeyReader) readEscape() (string, error) {
	if k.in.Buffered() == 0 {
		return "escape", nil
	}
	next, err := k.in.Peek(1)
	if err != nil {
		return "escape", nil
	}
	// CSI (ESC [) and SS3 (ESC O) sequences
	if next[0] != '[' && next[0] != 'O' {
		return "escape", nil
	}
	_, _ = k.in.ReadByte()
	b3, err := k.in.ReadByte()
	if err != nil {
		return "escape", nil
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}
