package key

import "fmt"

// Kind identifies which variant of Event is populated.
type Kind uint8

const (
	// KindNone means no byte arrived before the read timeout.
	KindNone Kind = iota
	// KindPrintable is a byte outside the control range.
	KindPrintable
	// KindControl is a C0 control byte other than ESC.
	KindControl
	// KindNamed is a special key decoded from an escape sequence.
	KindNamed
)

// Named identifies a special key.
type Named uint8

// Special keys.
const (
	NamedNone Named = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyBackspace
	KeyEscape
)

var namedNames = map[Named]string{
	KeyArrowUp:    "Up",
	KeyArrowDown:  "Down",
	KeyArrowLeft:  "Left",
	KeyArrowRight: "Right",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PgUp",
	KeyPageDown:   "PgDn",
	KeyDelete:     "Delete",
	KeyBackspace:  "Backspace",
	KeyEscape:     "Esc",
}

// String returns the display name of the key.
func (n Named) String() string {
	if s, ok := namedNames[n]; ok {
		return s
	}
	return "None"
}

// Control bytes with meaning to the editor.
const (
	ByteCtrlH     byte = 0x08
	ByteTab       byte = 0x09
	ByteEnter     byte = 0x0d
	ByteEscape    byte = 0x1b
	ByteBackspace byte = 0x7f
)

// Event is a single decoded key press.
//
// Exactly one variant is meaningful, selected by Kind: Byte for
// KindPrintable and KindControl, Key for KindNamed, nothing for KindNone.
type Event struct {
	Kind Kind
	Byte byte
	Key  Named
}

// None returns the event reported when the read timed out.
func None() Event {
	return Event{Kind: KindNone}
}

// Printable returns a printable character event.
func Printable(b byte) Event {
	return Event{Kind: KindPrintable, Byte: b}
}

// Control returns a control character event.
func Control(b byte) Event {
	return Event{Kind: KindControl, Byte: b}
}

// Special returns a named key event.
func Special(k Named) Event {
	return Event{Kind: KindNamed, Key: k}
}

// FromByte classifies a single byte that is not the start of an
// escape sequence.
func FromByte(b byte) Event {
	switch {
	case b == ByteBackspace:
		return Special(KeyBackspace)
	case b == ByteEscape:
		return Special(KeyEscape)
	case b < 0x20:
		return Control(b)
	default:
		return Printable(b)
	}
}

// IsNone reports whether the event carries no key.
func (e Event) IsNone() bool {
	return e.Kind == KindNone
}

// Is reports whether the event is the named key k.
func (e Event) Is(k Named) bool {
	return e.Kind == KindNamed && e.Key == k
}

// IsControl reports whether the event is the control byte b.
func (e Event) IsControl(b byte) bool {
	return e.Kind == KindControl && e.Byte == b
}

// IsInsertable reports whether the event is a byte the editor inserts
// literally into text: printable ASCII or a tab.
func (e Event) IsInsertable() bool {
	switch e.Kind {
	case KindPrintable:
		return e.Byte >= 0x20 && e.Byte < 0x7f
	case KindControl:
		return e.Byte == ByteTab
	}
	return false
}

// String returns a readable representation for logs and tests.
func (e Event) String() string {
	switch e.Kind {
	case KindPrintable:
		return fmt.Sprintf("%q", rune(e.Byte))
	case KindControl:
		return ControlName(e.Byte)
	case KindNamed:
		return e.Key.String()
	default:
		return "<none>"
	}
}
