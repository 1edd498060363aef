package viewport

// Direction is one of the four primitive cursor moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Move applies one primitive move. Up and Down stop at row 0 and at
// the append row; Left at column 0 wraps to the end of the previous
// row; Right at the end of a row wraps to column 0 of the next. The
// column is clamped to the destination row afterwards.
func (v *Viewport) Move(doc Text, dir Direction) {
	v.clamp(doc)
	rows := doc.RowCount()

	switch dir {
	case Up:
		if v.cursor.Row > 0 {
			v.cursor.Row--
		}
	case Down:
		if v.cursor.Row < rows {
			v.cursor.Row++
		}
	case Left:
		if v.cursor.Col > 0 {
			v.cursor.Col--
		} else if v.cursor.Row > 0 {
			v.cursor.Row--
			v.cursor.Col = doc.RowLen(v.cursor.Row)
		}
	case Right:
		if v.cursor.Row < rows {
			if v.cursor.Col < doc.RowLen(v.cursor.Row) {
				v.cursor.Col++
			} else {
				v.cursor.Row++
				v.cursor.Col = 0
			}
		}
	}

	v.clamp(doc)
}

// PageUp moves the cursor to the top visible row and then one screen
// further up, one row at a time.
func (v *Viewport) PageUp(doc Text) {
	v.cursor.Row = v.rowOffset
	for i := 0; i < v.screenRows; i++ {
		v.Move(doc, Up)
	}
}

// PageDown moves the cursor to the bottom visible row and then one
// screen further down, one row at a time.
func (v *Viewport) PageDown(doc Text) {
	v.cursor.Row = v.rowOffset + v.screenRows - 1
	if n := doc.RowCount(); v.cursor.Row > n {
		v.cursor.Row = n
	}
	for i := 0; i < v.screenRows; i++ {
		v.Move(doc, Down)
	}
}

// Home moves the cursor to column 0.
func (v *Viewport) Home() {
	v.cursor.Col = 0
}

// End moves the cursor past the last byte of the current row.
func (v *Viewport) End(doc Text) {
	v.cursor.Col = doc.RowLen(v.cursor.Row)
}
