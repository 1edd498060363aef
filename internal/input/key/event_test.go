package key

import (
	"errors"
	"fmt"
	"testing"
)

func TestFromByte(t *testing.T) {
	tests := []struct {
		b    byte
		want Event
	}{
		{'a', Printable('a')},
		{' ', Printable(' ')},
		{0x7f, Special(KeyBackspace)},
		{0x1b, Special(KeyEscape)},
		{0x03, Control(0x03)},
		{0x09, Control(0x09)},
		{0xc3, Printable(0xc3)},
	}
	for _, tt := range tests {
		if got := FromByte(tt.b); got != tt.want {
			t.Errorf("FromByte(%#x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestEventIsInsertable(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{Printable('a'), true},
		{Printable('~'), true},
		{Printable(0xc3), false},
		{Control(ByteTab), true},
		{Control(ByteEnter), false},
		{Special(KeyDelete), false},
		{None(), false},
	}
	for _, tt := range tests {
		if got := tt.event.IsInsertable(); got != tt.want {
			t.Errorf("%v.IsInsertable() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestParseControl(t *testing.T) {
	tests := []struct {
		name string
		want byte
	}{
		{"Ctrl-Q", 0x11},
		{"ctrl-s", 0x13},
		{"Ctrl+F", 0x06},
		{" Ctrl-L ", 0x0c},
	}
	for _, tt := range tests {
		got, err := ParseControl(tt.name)
		if err != nil {
			t.Errorf("ParseControl(%q) error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseControl(%q) = %#x, want %#x", tt.name, got, tt.want)
		}
	}
}

func TestParseControlErrors(t *testing.T) {
	if _, err := ParseControl(""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, err := ParseControl("Hyper-Q"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName, got %v", err)
	}
	// Named keys that are not single control bytes are rejected.
	if _, err := ParseControl("Up"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("expected ErrUnknownName for Up, got %v", err)
	}
}

func TestControlNameRoundTrip(t *testing.T) {
	for _, name := range []string{"Ctrl-Q", "Ctrl-S", "Ctrl-F"} {
		b, err := ParseControl(name)
		if err != nil {
			t.Fatalf("ParseControl(%q): %v", name, err)
		}
		if got := ControlName(b); got != name {
			t.Errorf("ControlName(%#x) = %q, want %q", b, got, name)
		}
	}
}

func TestParseControlCoversCtrlLetters(t *testing.T) {
	for b := byte(1); b <= 26; b++ {
		name := fmt.Sprintf("Ctrl-%c", 'A'+b-1)
		got, err := ParseControl(name)
		if err != nil {
			t.Errorf("ParseControl(%q) error: %v", name, err)
			continue
		}
		if got != b {
			t.Errorf("ParseControl(%q) = %#x, want %#x", name, got, b)
		}
	}
	if got, err := ParseControl("Enter"); err != nil || got != ByteEnter {
		t.Errorf("expected Enter to map to %#x, got %#x (%v)", ByteEnter, got, err)
	}
}

func TestControlName(t *testing.T) {
	tests := []struct {
		b    byte
		want string
	}{
		{0x00, "Ctrl-Space"},
		{0x0c, "Ctrl-L"},
		{0x11, "Ctrl-Q"},
		{ByteTab, "Tab"},
		{ByteEnter, "Enter"},
		{0x1b, "Esc"},
	}
	for _, tt := range tests {
		if got := ControlName(tt.b); got != tt.want {
			t.Errorf("ControlName(%#x) = %q, want %q", tt.b, got, tt.want)
		}
	}
}
