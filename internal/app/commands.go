package app

import (
	"github.com/dshills/tern/internal/input/key"
	"github.com/dshills/tern/internal/search"
	"github.com/dshills/tern/internal/watcher"
)

// save writes the document, prompting for a name when untitled. A
// failed write leaves the document and its dirty flag untouched.
func (s *Session) save() error {
	if s.filename == "" {
		name, ok, err := s.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			s.setStatus("Save aborted")
			return nil
		}
		s.filename = name
	}

	n, err := s.store.WriteAll(s.filename, s.doc.Serialize())
	if err != nil {
		s.logger.Error("%v", NewOperationError("save", s.filename, err))
		s.setStatus("Can't save! I/O error: %v", err)
		return nil
	}

	s.doc.MarkClean()
	s.quitsLeft = s.cfg.QuitTimes
	s.setStatus("%d bytes written to disk", n)
	s.logger.Info("saved %s (%d bytes)", s.filename, n)

	if s.watcher != nil {
		s.watcher.Acknowledge()
	} else {
		s.startWatch()
	}
	if s.hooks != nil {
		s.runHook(s.hooks.OnSave(s.filename, n))
	}
	return nil
}

// find runs an incremental search prompt. Escape returns the cursor to
// where the search started; Enter leaves it on the match.
func (s *Session) find() error {
	ctl := search.New(s.doc, s.view)
	_, _, err := s.Prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k key.Event) {
		ctl.OnInput(query, k)
	})
	return err
}

// startWatch begins reporting external changes to the current file.
func (s *Session) startWatch() {
	if !s.cfg.Watch || s.filename == "" || s.watcher != nil {
		return
	}
	w, err := watcher.New(s.filename)
	if err != nil {
		s.logger.WithComponent("watcher").Warn("watch %s: %v", s.filename, err)
		return
	}
	s.watcher = w
}

func (s *Session) pollWatch() {
	if s.watcher == nil {
		return
	}
	changed, err := s.watcher.Poll()
	if err != nil {
		s.logger.WithComponent("watcher").Warn("%v", err)
	}
	if changed {
		s.logger.Info("%s changed on disk", s.filename)
		s.setStatus("File changed on disk")
	}
}

// runHook applies a hook result: a returned message becomes the status.
func (s *Session) runHook(msg string, err error) {
	if err != nil {
		s.logger.WithComponent("hooks").Warn("%v", err)
		s.setStatus("Hook error: %v", err)
		return
	}
	if msg != "" {
		s.setStatus("%s", msg)
	}
}

// scriptHost exposes the session to hook scripts.
type scriptHost struct {
	s *Session
}

func (h scriptHost) SetStatus(msg string) { h.s.setStatus("%s", msg) }

func (h scriptHost) Log(msg string) { h.s.logger.WithComponent("script").Info("%s", msg) }
