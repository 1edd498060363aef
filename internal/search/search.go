// Package search implements incremental, directional, wrap-around
// substring search over a document.
//
// A Controller lives for one find prompt. The prompt calls OnInput after
// every keystroke with the current query and the key that was pressed.
// Arrow keys continue from the last match in a direction; any other key
// restarts the search forward from the top. Escape puts the cursor and
// scroll position back where they were when the Controller was created.
package search

import (
	"bytes"

	"github.com/dshills/tern/internal/engine/document"
	"github.com/dshills/tern/internal/input/key"
	"github.com/dshills/tern/internal/renderer/viewport"
)

// Direction is the scan direction.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Controller holds the state of one incremental search.
type Controller struct {
	doc   *document.Document
	view  *viewport.Viewport
	saved viewport.State

	lastMatch int
	direction Direction
}

// New starts a search over doc, remembering the current position of view
// so it can be restored on cancel.
func New(doc *document.Document, view *viewport.Viewport) *Controller {
	return &Controller{
		doc:       doc,
		view:      view,
		saved:     view.Save(),
		lastMatch: -1,
		direction: Forward,
	}
}

// LastMatch returns the row of the last match, or -1.
func (c *Controller) LastMatch() int { return c.lastMatch }

// Direction returns the current scan direction.
func (c *Controller) Direction() Direction { return c.direction }

// OnInput advances the search for the given query and key. It reports
// whether the query matched a row.
func (c *Controller) OnInput(query string, k key.Event) bool {
	switch {
	case k.Is(key.KeyEscape):
		c.view.Restore(c.saved)
		c.reset()
		return false
	case k.IsControl(key.ByteEnter):
		c.reset()
		return false
	case k.Is(key.KeyArrowRight), k.Is(key.KeyArrowDown):
		c.direction = Forward
	case k.Is(key.KeyArrowLeft), k.Is(key.KeyArrowUp):
		c.direction = Backward
	default:
		c.reset()
	}

	if query == "" {
		return false
	}
	if c.lastMatch == -1 {
		c.direction = Forward
	}
	return c.scan([]byte(query))
}

func (c *Controller) reset() {
	c.lastMatch = -1
	c.direction = Forward
}

// scan visits each row at most once, starting one step past the last
// match and wrapping at both ends.
func (c *Controller) scan(query []byte) bool {
	n := c.doc.RowCount()
	current := c.lastMatch
	for i := 0; i < n; i++ {
		current += int(c.direction)
		switch {
		case current == -1:
			current = n - 1
		case current == n:
			current = 0
		}

		row, err := c.doc.Row(current)
		if err != nil {
			return false
		}
		at := bytes.Index(row.Render(), query)
		if at < 0 {
			continue
		}

		col, err := c.doc.RenderColToBufferCol(current, at)
		if err != nil {
			return false
		}
		c.lastMatch = current
		c.view.Place(c.doc, viewport.Cursor{Col: col, Row: current})
		c.view.Reveal()
		return true
	}
	return false
}
