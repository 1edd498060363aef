package app

import (
	"github.com/dshills/tern/internal/input/key"
	"github.com/dshills/tern/internal/renderer/viewport"
)

// arrows maps arrow keys to cursor moves.
var arrows = map[key.Named]viewport.Direction{
	key.KeyArrowUp:    viewport.Up,
	key.KeyArrowDown:  viewport.Down,
	key.KeyArrowLeft:  viewport.Left,
	key.KeyArrowRight: viewport.Right,
}

// processKey applies one key event to the session. It returns ErrQuit
// when the session should end.
func (s *Session) processKey(k key.Event) error {
	switch k.Kind {
	case key.KindNone:
		return nil

	case key.KindControl:
		switch k.Byte {
		case s.bindings.Quit:
			return s.quit()
		case s.bindings.Save:
			return s.save()
		case s.bindings.Find:
			return s.find()
		case s.bindings.Refresh:
			return nil
		case key.ByteEnter:
			s.insertNewline()
		case key.ByteCtrlH:
			s.deleteChar()
		case key.ByteTab:
			s.insertChar(k.Byte)
		}

	case key.KindNamed:
		switch k.Key {
		case key.KeyEscape:
		case key.KeyBackspace:
			s.deleteChar()
		case key.KeyDelete:
			s.view.Move(s.doc, viewport.Right)
			s.deleteChar()
		case key.KeyHome:
			s.view.Home()
		case key.KeyEnd:
			s.view.End(s.doc)
		case key.KeyPageUp:
			s.view.PageUp(s.doc)
		case key.KeyPageDown:
			s.view.PageDown(s.doc)
		case key.KeyArrowUp, key.KeyArrowDown, key.KeyArrowLeft, key.KeyArrowRight:
			s.view.Move(s.doc, arrows[k.Key])
		}

	case key.KindPrintable:
		if k.IsInsertable() {
			s.insertChar(k.Byte)
		}
	}
	return nil
}

// edited resets the quit confirmation after a successful edit.
func (s *Session) edited() {
	s.quitsLeft = s.cfg.QuitTimes
}

func (s *Session) insertChar(ch byte) {
	c := s.view.Cursor()
	if err := s.doc.InsertChar(c.Row, c.Col, ch); err != nil {
		s.logger.Debug("insert: %v", err)
		return
	}
	s.view.Place(s.doc, viewport.Cursor{Col: c.Col + 1, Row: c.Row})
	s.edited()
}

func (s *Session) insertNewline() {
	c := s.view.Cursor()
	if err := s.doc.SplitRow(c.Row, c.Col); err != nil {
		s.logger.Debug("newline: %v", err)
		return
	}
	s.view.Place(s.doc, viewport.Cursor{Col: 0, Row: c.Row + 1})
	s.edited()
}

// deleteChar removes the byte before the cursor, joining rows at
// column 0.
func (s *Session) deleteChar() {
	c := s.view.Cursor()
	if c.Row >= s.doc.RowCount() || (c.Col == 0 && c.Row == 0) {
		return
	}

	next := viewport.Cursor{Col: c.Col - 1, Row: c.Row}
	if c.Col == 0 {
		next = viewport.Cursor{Col: s.doc.RowLen(c.Row - 1), Row: c.Row - 1}
	}
	if err := s.doc.DeleteChar(c.Row, c.Col); err != nil {
		s.logger.Debug("delete: %v", err)
		return
	}
	s.view.Place(s.doc, next)
	s.edited()
}

// quit ends the session, asking for confirmation presses while the
// document has unsaved changes.
func (s *Session) quit() error {
	if s.doc.Dirty() && s.quitsLeft > 1 {
		s.quitsLeft--
		s.setStatus("WARNING!!! File has unsaved changes. Press %s %d more times to quit.",
			key.ControlName(s.bindings.Quit), s.quitsLeft)
		return nil
	}
	s.logger.Info("quit (dirty=%v)", s.doc.Dirty())
	return ErrQuit
}
