// Package compositor assembles full-screen frames.
//
// Every call to Render produces one byte slice that repaints the whole
// screen: text rows, a status bar and a message bar, followed by the
// cursor position. The caller writes the slice to the terminal in a
// single write. There is no incremental redraw.
package compositor

import (
	"fmt"
	"time"

	"github.com/dshills/tern/internal/engine/document"
	"github.com/dshills/tern/internal/renderer/viewport"
)

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// ReservedRows is the number of terminal rows used by the status and
// message bars.
const ReservedRows = 2

// Config configures a Compositor.
type Config struct {
	// Banner holds the welcome lines shown on an empty, unnamed,
	// never-edited document.
	Banner [2]string

	// Style opens the status bar.
	Style StatusStyle

	// MessageTimeout is the lifetime of a status message.
	MessageTimeout time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Frame is the state one render reads. The compositor keeps no
// reference to it after Render returns.
type Frame struct {
	Doc         *document.Document
	View        *viewport.Viewport
	Filename    string
	Message     string
	MessageTime time.Time
}

// Compositor renders frames.
type Compositor struct {
	cfg Config
	buf []byte
}

// New creates a compositor.
func New(cfg Config) *Compositor {
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = DefaultMessageTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Style.open == "" {
		cfg.Style = ReverseVideo()
	}
	return &Compositor{cfg: cfg}
}

// Render returns the bytes for one full repaint. The returned slice is
// reused by the next call.
func (c *Compositor) Render(f Frame) []byte {
	buf := c.buf[:0]
	buf = append(buf, seqHideCursor...)
	buf = append(buf, seqCursorHome...)

	buf = c.appendRows(buf, f)
	buf = c.appendStatusBar(buf, f)
	buf = c.appendMessageBar(buf, f)

	row, col := f.View.ScreenPosition()
	buf = appendCursorTo(buf, row, col)
	buf = append(buf, seqShowCursor...)

	c.buf = buf
	return buf
}

func (c *Compositor) showBanner(f Frame) bool {
	return f.Doc.RowCount() == 0 && f.Doc.Version() == 0 && f.Filename == ""
}

func (c *Compositor) appendRows(buf []byte, f Frame) []byte {
	rows := f.View.ScreenRows()
	cols := f.View.ScreenCols()
	banner := c.showBanner(f)

	for y := 0; y < rows; y++ {
		fileRow := y + f.View.RowOffset()
		if fileRow >= f.Doc.RowCount() {
			switch {
			case banner && y == rows/3:
				buf = appendCentered(buf, c.cfg.Banner[0], cols)
			case banner && y == rows/3+1:
				buf = appendCentered(buf, c.cfg.Banner[1], cols)
			default:
				buf = append(buf, '~')
			}
		} else {
			r, err := f.Doc.Row(fileRow)
			if err == nil {
				buf = append(buf, window(r.Render(), f.View.ColOffset(), cols)...)
			}
		}
		buf = append(buf, seqClearLine...)
		buf = append(buf, lineBreak...)
	}
	return buf
}

// appendCentered writes a filler glyph followed by text centred in cols.
func appendCentered(buf []byte, text string, cols int) []byte {
	if len(text) > cols {
		text = text[:cols]
	}
	padding := (cols - len(text)) / 2
	if padding > 0 {
		buf = append(buf, '~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf = append(buf, ' ')
	}
	return append(buf, text...)
}

// window returns the part of s visible from column off across cols.
func window(s []byte, off, cols int) []byte {
	if off >= len(s) {
		return nil
	}
	s = s[off:]
	if len(s) > cols {
		s = s[:cols]
	}
	return s
}

func (c *Compositor) appendStatusBar(buf []byte, f Frame) []byte {
	cols := f.View.ScreenCols()
	name := f.Filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if f.Doc.Dirty() {
		modified = "(modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines %s", name, f.Doc.RowCount(), modified)
	right := fmt.Sprintf("%d/%d", f.View.Cursor().Row+1, f.Doc.RowCount())

	buf = append(buf, c.cfg.Style.String()...)
	if len(left) > cols {
		left = left[:cols]
	}
	buf = append(buf, left...)
	for n := len(left); n < cols; n++ {
		if cols-n == len(right) {
			buf = append(buf, right...)
			break
		}
		buf = append(buf, ' ')
	}
	buf = append(buf, seqResetStyle...)
	return append(buf, lineBreak...)
}

func (c *Compositor) appendMessageBar(buf []byte, f Frame) []byte {
	buf = append(buf, seqClearLine...)
	if f.Message == "" || c.cfg.Now().Sub(f.MessageTime) >= c.cfg.MessageTimeout {
		return buf
	}
	msg := f.Message
	if cols := f.View.ScreenCols(); len(msg) > cols {
		msg = msg[:cols]
	}
	return append(buf, msg...)
}
