package compositor

import "strconv"

// VT100 control sequences emitted by the compositor.
const (
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
	seqCursorHome  = "\x1b[H"
	seqClearLine   = "\x1b[K"
	seqClearScreen = "\x1b[2J"
	seqReverse     = "\x1b[7m"
	seqResetStyle  = "\x1b[m"
	lineBreak      = "\r\n"
)

// appendCursorTo appends an absolute cursor position. row and col are
// 0-based; the terminal expects 1-based coordinates.
func appendCursorTo(buf []byte, row, col int) []byte {
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(row+1), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col+1), 10)
	return append(buf, 'H')
}

// ClearScreen returns the sequence that erases the screen and homes the
// cursor, used when the editor exits.
func ClearScreen() []byte {
	return []byte(seqClearScreen + seqCursorHome)
}
