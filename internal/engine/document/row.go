package document

// Row is one logical line of text without its line terminator.
type Row struct {
	chars  []byte
	render []byte
}

func newRow(text []byte, tabStop int) *Row {
	r := &Row{chars: append([]byte(nil), text...)}
	r.update(tabStop)
	return r
}

// update rebuilds the render form from chars.
func (r *Row) update(tabStop int) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.chars)+tabs*(tabStop-1))
	for _, c := range r.chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%tabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.render = render
}

// Len returns the number of logical bytes in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the width of the row on screen.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// Chars returns the logical content. The slice must not be modified.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the tab-expanded content. The slice must not be modified.
func (r *Row) Render() []byte {
	return r.render
}

// String returns the logical content as a string.
func (r *Row) String() string {
	return string(r.chars)
}

// renderCol maps a buffer column to its render column.
func (r *Row) renderCol(col, tabStop int) int {
	rx := 0
	for _, c := range r.chars[:col] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// bufferCol maps a render column back to the buffer column whose
// rendered span contains it. Targets past the end map to Len().
func (r *Row) bufferCol(target, tabStop int) int {
	rx := 0
	for cx, c := range r.chars {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
		if rx > target {
			return cx
		}
	}
	return len(r.chars)
}
