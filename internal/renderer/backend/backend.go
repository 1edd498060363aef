// Package backend provides the terminal driver used by the editor.
package backend

import (
	"bytes"
	"time"
)

// Driver is the terminal capability the editor consumes.
// RestoreMode without a preceding EnterRawMode is a no-op.
type Driver interface {
	// EnterRawMode switches input to unbuffered, unechoed bytes.
	EnterRawMode() error

	// RestoreMode returns the terminal to the mode saved by EnterRawMode.
	RestoreMode() error

	// Size returns the current terminal dimensions.
	Size() (rows, cols int, err error)

	// ReadInput waits up to timeout for one input byte.
	// ok is false when the timeout elapsed with no input.
	ReadInput(timeout time.Duration) (b byte, ok bool, err error)

	// Write sends bytes to the terminal.
	Write(p []byte) (int, error)
}

// NullBackend is an in-memory driver for testing.
// Input is queued with Feed; every Write is recorded as one frame.
type NullBackend struct {
	rows, cols int
	input      []byte
	frames     [][]byte
	raw        bool
	restores   int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(rows, cols int) *NullBackend {
	return &NullBackend{rows: rows, cols: cols}
}

func (b *NullBackend) EnterRawMode() error {
	b.raw = true
	return nil
}

func (b *NullBackend) RestoreMode() error {
	if !b.raw {
		return nil
	}
	b.raw = false
	b.restores++
	return nil
}

func (b *NullBackend) Size() (int, int, error) {
	return b.rows, b.cols, nil
}

// ReadInput returns the next queued byte, or reports a timeout once the
// queue is empty.
func (b *NullBackend) ReadInput(time.Duration) (byte, bool, error) {
	if len(b.input) == 0 {
		return 0, false, nil
	}
	c := b.input[0]
	b.input = b.input[1:]
	return c, true, nil
}

func (b *NullBackend) Write(p []byte) (int, error) {
	b.frames = append(b.frames, bytes.Clone(p))
	return len(p), nil
}

// Feed queues input bytes.
func (b *NullBackend) Feed(s string) {
	b.input = append(b.input, s...)
}

// Pending returns the number of queued input bytes.
func (b *NullBackend) Pending() int {
	return len(b.input)
}

// Resize simulates a terminal resize for testing.
func (b *NullBackend) Resize(rows, cols int) {
	b.rows = rows
	b.cols = cols
}

// Frames returns every write in order.
func (b *NullBackend) Frames() [][]byte {
	return b.frames
}

// LastFrame returns the most recent write, or nil.
func (b *NullBackend) LastFrame() []byte {
	if len(b.frames) == 0 {
		return nil
	}
	return b.frames[len(b.frames)-1]
}

// Raw reports whether the backend is in raw mode.
func (b *NullBackend) Raw() bool {
	return b.raw
}

// Restores returns how many times raw mode was restored.
func (b *NullBackend) Restores() int {
	return b.restores
}
