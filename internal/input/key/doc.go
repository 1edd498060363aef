// Package key turns raw terminal input bytes into key events.
//
// This package defines the types for representing keyboard input:
//
//   - Kind: which variant of Event is populated (none, printable, control, named)
//   - Named: the closed set of special keys decoded from escape sequences
//   - Event: one decoded key press
//   - Decoder: reads bytes from an InputReader and produces Events
//
// # Escape Sequences
//
// The decoder understands the VT100/xterm subset emitted by common
// terminals for navigation keys:
//
//   - CSI letters: ESC [ A|B|C|D|H|F
//   - CSI numbers: ESC [ 1|3|4|5|6|7|8 ~
//   - SS3 letters: ESC O A|B|C|D|H|F
//
// Anything else that starts with ESC, including a sequence that stalls
// before its final byte, decodes to KeyEscape.
//
// # Control Key Names
//
// Control keys are named the way tcell names them ("Ctrl-Q", "Enter",
// "Tab"). ParseControl and ControlName convert between those names and
// the raw control bytes, which lets key bindings live in configuration.
package key
