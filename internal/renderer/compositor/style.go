package compositor

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// StatusStyle is the attribute sequence that opens the status bar.
type StatusStyle struct {
	open string
}

// ReverseVideo returns the default status bar style.
func ReverseVideo() StatusStyle {
	return StatusStyle{open: seqReverse}
}

// ParseStatusStyle builds a truecolour style from hex colours such as
// "#1e1e2e". When both colours are empty it returns ReverseVideo.
func ParseStatusStyle(foreground, background string) (StatusStyle, error) {
	if foreground == "" && background == "" {
		return ReverseVideo(), nil
	}
	var open string
	if foreground != "" {
		c, err := colorful.Hex(foreground)
		if err != nil {
			return StatusStyle{}, fmt.Errorf("status foreground %q: %w", foreground, err)
		}
		r, g, b := c.RGB255()
		open += fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	if background != "" {
		c, err := colorful.Hex(background)
		if err != nil {
			return StatusStyle{}, fmt.Errorf("status background %q: %w", background, err)
		}
		r, g, b := c.RGB255()
		open += fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return StatusStyle{open: open}, nil
}

// String returns the escape sequence that applies the style.
func (s StatusStyle) String() string {
	if s.open == "" {
		return seqReverse
	}
	return s.open
}
