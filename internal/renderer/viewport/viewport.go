// Package viewport tracks the cursor and the visible window over a document.
package viewport

// Text is the read-only view of a document the viewport needs.
type Text interface {
	RowCount() int
	RowLen(row int) int
	BufferColToRenderCol(row, col int) (int, error)
}

// Cursor is a position in logical (buffer) coordinates.
// Row may equal the row count, which is the append position below the
// last row.
type Cursor struct {
	Col int
	Row int
}

// State is a saved cursor and scroll position.
type State struct {
	Cursor    Cursor
	RowOffset int
	ColOffset int
}

// Viewport represents the visible portion of the document and the
// cursor within it.
type Viewport struct {
	cursor    Cursor
	renderCol int

	// Position in document (first visible row and render column)
	rowOffset int
	colOffset int

	// Size in screen cells available for text
	screenRows int
	screenCols int

	// pinTop places the cursor row at the top on the next Scroll.
	pinTop bool
}

// New creates a viewport with the given text area size.
// Dimensions are clamped to a minimum of 1.
func New(screenRows, screenCols int) *Viewport {
	v := &Viewport{}
	v.Resize(screenRows, screenCols)
	return v
}

// Resize updates the text area size.
// Dimensions are clamped to a minimum of 1.
func (v *Viewport) Resize(screenRows, screenCols int) {
	if screenRows < 1 {
		screenRows = 1
	}
	if screenCols < 1 {
		screenCols = 1
	}
	v.screenRows = screenRows
	v.screenCols = screenCols
}

// ScreenRows returns the number of text rows visible.
func (v *Viewport) ScreenRows() int { return v.screenRows }

// ScreenCols returns the number of columns visible.
func (v *Viewport) ScreenCols() int { return v.screenCols }

// RowOffset returns the first visible row.
func (v *Viewport) RowOffset() int { return v.rowOffset }

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int { return v.colOffset }

// Cursor returns the cursor position.
func (v *Viewport) Cursor() Cursor { return v.cursor }

// RenderCol returns the cursor's render column as of the last Scroll.
func (v *Viewport) RenderCol() int { return v.renderCol }

// ScreenPosition returns the cursor position relative to the top-left
// of the text area, as of the last Scroll.
func (v *Viewport) ScreenPosition() (row, col int) {
	return v.cursor.Row - v.rowOffset, v.renderCol - v.colOffset
}

// Place moves the cursor to c, clamped to the document.
func (v *Viewport) Place(doc Text, c Cursor) {
	v.cursor = c
	v.clamp(doc)
}

// Reveal makes the next Scroll put the cursor row at the top of the
// screen instead of using the minimal shift.
func (v *Viewport) Reveal() {
	v.pinTop = true
}

// Save returns the cursor and scroll position.
func (v *Viewport) Save() State {
	return State{Cursor: v.cursor, RowOffset: v.rowOffset, ColOffset: v.colOffset}
}

// Restore returns the cursor and scroll position to a saved state.
func (v *Viewport) Restore(s State) {
	v.cursor = s.Cursor
	v.rowOffset = s.RowOffset
	v.colOffset = s.ColOffset
	v.pinTop = false
}

// clamp keeps the cursor inside the document: row in [0, RowCount()]
// and column in [0, RowLen(row)].
func (v *Viewport) clamp(doc Text) {
	if v.cursor.Row < 0 {
		v.cursor.Row = 0
	}
	if n := doc.RowCount(); v.cursor.Row > n {
		v.cursor.Row = n
	}
	if v.cursor.Col < 0 {
		v.cursor.Col = 0
	}
	if n := doc.RowLen(v.cursor.Row); v.cursor.Col > n {
		v.cursor.Col = n
	}
}

// Scroll recomputes the render column and shifts the offsets by the
// minimum amount that keeps the cursor on screen.
func (v *Viewport) Scroll(doc Text) {
	v.clamp(doc)

	v.renderCol = 0
	if v.cursor.Row < doc.RowCount() {
		if rx, err := doc.BufferColToRenderCol(v.cursor.Row, v.cursor.Col); err == nil {
			v.renderCol = rx
		}
	}

	if v.pinTop {
		v.rowOffset = v.cursor.Row
		v.pinTop = false
	}
	if v.cursor.Row < v.rowOffset {
		v.rowOffset = v.cursor.Row
	}
	if v.cursor.Row >= v.rowOffset+v.screenRows {
		v.rowOffset = v.cursor.Row - v.screenRows + 1
	}
	if v.renderCol < v.colOffset {
		v.colOffset = v.renderCol
	}
	if v.renderCol >= v.colOffset+v.screenCols {
		v.colOffset = v.renderCol - v.screenCols + 1
	}
}
