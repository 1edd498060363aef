package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Name errors.
var (
	ErrEmptyName   = errors.New("empty key name")
	ErrUnknownName = errors.New("unknown control key name")
)

// controlByte returns the raw byte a tcell key sends in raw mode. tcell
// numbers the Ctrl-letter keys apart from the ASCII control range, so
// both forms are folded onto the same byte.
func controlByte(k tcell.Key) (byte, bool) {
	switch {
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		return byte(k - tcell.KeyCtrlSpace), true
	case k >= 0 && k < 0x20, k == tcell.KeyDEL:
		return byte(k), true
	}
	return 0, false
}

// ParseControl returns the control byte for a tcell key name such as
// "Ctrl-Q" or "Enter". Matching is case-insensitive and accepts "+" as
// well as "-" between modifier and key.
func ParseControl(name string) (byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	want := strings.ReplaceAll(name, "+", "-")
	for k, n := range tcell.KeyNames {
		if !strings.EqualFold(n, want) {
			continue
		}
		if b, ok := controlByte(k); ok {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// ControlName returns the tcell name of a control byte. Bytes with a
// dedicated key name such as Enter or Tab use it; the rest use the
// Ctrl-letter name.
func ControlName(b byte) string {
	if b < 0x20 || b == ByteBackspace {
		if n, ok := tcell.KeyNames[tcell.Key(b)]; ok {
			return n
		}
	}
	if b < 0x20 {
		if n, ok := tcell.KeyNames[tcell.KeyCtrlSpace+tcell.Key(b)]; ok {
			return n
		}
		return fmt.Sprintf("^%c", b+'@')
	}
	return fmt.Sprintf("%#02x", b)
}
