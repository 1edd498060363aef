package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal implements Driver on a POSIX tty.
type Terminal struct {
	in  *os.File
	out *os.File

	mu    sync.Mutex
	state *term.State
}

// NewTerminal creates a driver over the process's stdin and stdout.
func NewTerminal() (*Terminal, error) {
	return NewTerminalFiles(os.Stdin, os.Stdout)
}

// NewTerminalFiles creates a driver over the given files.
func NewTerminalFiles(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("stdin: %w", ErrNotTerminal)
	}
	return &Terminal{in: in, out: out}, nil
}

func (t *Terminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

func (t *Terminal) RestoreMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	t.state = nil
	return nil
}

func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("querying terminal size: %w", err)
	}
	return rows, cols, nil
}

// ReadInput polls stdin for up to timeout. An interrupted poll counts
// as a timeout so the caller's loop can run again.
func (t *Terminal) ReadInput(timeout time.Duration) (byte, bool, error) {
	fd := int(t.in.Fd())
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("polling stdin: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var buf [1]byte
	for {
		n, err = unix.Read(fd, buf[:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading stdin: %w", err)
	}
	if n == 0 {
		return 0, false, io.EOF
	}
	return buf[0], true, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
