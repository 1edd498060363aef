package document

import (
	"bytes"
	"errors"
	"fmt"
)

// DefaultTabStop is the render width of a tab when none is configured.
const DefaultTabStop = 8

// ErrOutOfRange is returned when a row or column index is outside the
// document.
var ErrOutOfRange = errors.New("index out of range")

// RangeError describes a rejected index.
type RangeError struct {
	Op  string // Operation name (e.g., "insertChar", "deleteRow")
	Row int
	Col int // -1 when the operation has no column
}

func (e *RangeError) Error() string {
	if e.Col < 0 {
		return fmt.Sprintf("document: %s row %d: %v", e.Op, e.Row, ErrOutOfRange)
	}
	return fmt.Sprintf("document: %s row %d col %d: %v", e.Op, e.Row, e.Col, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Option configures a Document.
type Option func(*Document)

// WithTabStop sets the tab width used to build render forms.
// Values below 1 are ignored.
func WithTabStop(n int) Option {
	return func(d *Document) {
		if n >= 1 {
			d.tabStop = n
		}
	}
}

// Document is an ordered collection of rows.
// It is not safe for concurrent use.
type Document struct {
	rows    []*Row
	tabStop int
	dirty   bool
	version uint64
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{tabStop: DefaultTabStop}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromLines creates a document with one row per line. The result is
// clean: loading is not an edit.
func FromLines(lines []string, opts ...Option) *Document {
	d := New(opts...)
	d.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		d.rows = append(d.rows, newRow([]byte(line), d.tabStop))
	}
	return d
}

// TabStop returns the configured tab width.
func (d *Document) TabStop() int {
	return d.tabStop
}

// RowCount returns the number of rows.
func (d *Document) RowCount() int {
	return len(d.rows)
}

// Row returns the row at index at.
func (d *Document) Row(at int) (*Row, error) {
	if at < 0 || at >= len(d.rows) {
		return nil, &RangeError{Op: "row", Row: at, Col: -1}
	}
	return d.rows[at], nil
}

// RowLen returns the length of row at, or 0 for the append position
// and any other index outside the document.
func (d *Document) RowLen(at int) int {
	if at < 0 || at >= len(d.rows) {
		return 0
	}
	return d.rows[at].Len()
}

// Dirty reports whether the document changed since it was loaded or
// last marked clean.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean clears the dirty flag after a successful save.
func (d *Document) MarkClean() {
	d.dirty = false
}

// Version counts mutations over the document's lifetime. It never
// resets, so Version() == 0 means the document was never edited.
func (d *Document) Version() uint64 {
	return d.version
}

func (d *Document) touch() {
	d.dirty = true
	d.version++
}

// InsertRow inserts a new row holding text before index at.
// at == RowCount() appends.
func (d *Document) InsertRow(at int, text string) error {
	if at < 0 || at > len(d.rows) {
		return &RangeError{Op: "insertRow", Row: at, Col: -1}
	}
	d.insertRow(at, []byte(text))
	d.touch()
	return nil
}

func (d *Document) insertRow(at int, text []byte) {
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(text, d.tabStop)
}

// DeleteRow removes the row at index at.
func (d *Document) DeleteRow(at int) error {
	if at < 0 || at >= len(d.rows) {
		return &RangeError{Op: "deleteRow", Row: at, Col: -1}
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.touch()
	return nil
}

// InsertChar inserts ch before column col of row. row == RowCount()
// first appends an empty row, so only col 0 is valid there.
func (d *Document) InsertChar(row, col int, ch byte) error {
	if row < 0 || row > len(d.rows) || col < 0 || col > d.RowLen(row) {
		return &RangeError{Op: "insertChar", Row: row, Col: col}
	}
	if row == len(d.rows) {
		d.insertRow(row, nil)
	}
	r := d.rows[row]
	r.chars = append(r.chars, 0)
	copy(r.chars[col+1:], r.chars[col:])
	r.chars[col] = ch
	r.update(d.tabStop)
	d.touch()
	return nil
}

// DeleteChar deletes the byte immediately before column col of row.
// At column 0 the row is joined onto the end of the previous row; at
// (0, 0) there is nothing before the cursor and nothing changes.
func (d *Document) DeleteChar(row, col int) error {
	if row < 0 || row >= len(d.rows) || col < 0 || col > d.rows[row].Len() {
		return &RangeError{Op: "deleteChar", Row: row, Col: col}
	}
	if col == 0 {
		if row == 0 {
			return nil
		}
		if err := d.AppendText(row-1, string(d.rows[row].chars)); err != nil {
			return err
		}
		return d.DeleteRow(row)
	}
	r := d.rows[row]
	r.chars = append(r.chars[:col-1], r.chars[col:]...)
	r.update(d.tabStop)
	d.touch()
	return nil
}

// SplitRow breaks row at column col. At column 0 an empty row is
// inserted above row; otherwise the bytes from col onward move to a new
// row below. row == RowCount() is valid with col 0 and appends an
// empty row.
func (d *Document) SplitRow(row, col int) error {
	if row < 0 || row > len(d.rows) || col < 0 || col > d.RowLen(row) {
		return &RangeError{Op: "splitRow", Row: row, Col: col}
	}
	if col == 0 {
		d.insertRow(row, nil)
		d.touch()
		return nil
	}
	r := d.rows[row]
	tail := append([]byte(nil), r.chars[col:]...)
	r.chars = r.chars[:col]
	r.update(d.tabStop)
	d.insertRow(row+1, tail)
	d.touch()
	return nil
}

// AppendText appends text to the end of row.
func (d *Document) AppendText(row int, text string) error {
	if row < 0 || row >= len(d.rows) {
		return &RangeError{Op: "appendText", Row: row, Col: -1}
	}
	r := d.rows[row]
	r.chars = append(r.chars, text...)
	r.update(d.tabStop)
	d.touch()
	return nil
}

// Serialize returns the document contents with every row terminated by
// a newline.
func (d *Document) Serialize() []byte {
	size := 0
	for _, r := range d.rows {
		size += r.Len() + 1
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for _, r := range d.rows {
		buf.Write(r.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Lines returns the logical content of every row.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return lines
}

// BufferColToRenderCol maps a logical column of row to its on-screen
// column, expanding tabs to the next tab stop.
func (d *Document) BufferColToRenderCol(row, col int) (int, error) {
	if row < 0 || row >= len(d.rows) || col < 0 || col > d.rows[row].Len() {
		return 0, &RangeError{Op: "bufferColToRenderCol", Row: row, Col: col}
	}
	return d.rows[row].renderCol(col, d.tabStop), nil
}

// RenderColToBufferCol maps an on-screen column of row back to the
// logical column whose rendered span covers it. Columns past the end
// of the render form map to the row length.
func (d *Document) RenderColToBufferCol(row, renderCol int) (int, error) {
	if row < 0 || row >= len(d.rows) || renderCol < 0 {
		return 0, &RangeError{Op: "renderColToBufferCol", Row: row, Col: renderCol}
	}
	return d.rows[row].bufferCol(renderCol, d.tabStop), nil
}
