package app

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/dshills/tern/internal/config"
	"github.com/dshills/tern/internal/engine/document"
	"github.com/dshills/tern/internal/filestore"
	"github.com/dshills/tern/internal/input/key"
	"github.com/dshills/tern/internal/plugin/lua"
	"github.com/dshills/tern/internal/renderer/backend"
	"github.com/dshills/tern/internal/renderer/compositor"
	"github.com/dshills/tern/internal/renderer/viewport"
	"github.com/dshills/tern/internal/watcher"
)

// Options configures a Session.
type Options struct {
	// Config holds the editor settings. Defaults to config.Default().
	Config *config.Config

	// Driver is the terminal. Required.
	Driver backend.Driver

	// Store reads and writes files. Defaults to filestore.NewOSStore().
	Store filestore.Store

	// Logger receives the session log. Defaults to NullLogger.
	Logger *Logger

	// Signals delivers termination signals. The loop checks it once per
	// iteration without blocking.
	Signals <-chan os.Signal

	// Version is shown in the welcome banner.
	Version string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Session owns one document and its viewport for the life of the
// editor.
type Session struct {
	cfg      *config.Config
	bindings config.Bindings
	driver   backend.Driver
	store    filestore.Store
	logger   *Logger
	signals  <-chan os.Signal
	now      func() time.Time

	doc  *document.Document
	view *viewport.Viewport
	comp *compositor.Compositor
	keys *key.Decoder

	filename  string
	status    string
	statusAt  time.Time
	quitsLeft int

	watcher *watcher.FileWatcher
	hooks   *lua.Hooks
}

// New creates a session holding an empty, untitled document.
func New(opts Options) (*Session, error) {
	if opts.Driver == nil {
		return nil, NewComponentError("session", "create", fmt.Errorf("no terminal driver"))
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	style, err := cfg.StatusStyle()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		bindings:  bindings,
		driver:    opts.Driver,
		store:     opts.Store,
		logger:    opts.Logger,
		signals:   opts.Signals,
		now:       opts.Now,
		quitsLeft: cfg.QuitTimes,
	}
	if s.store == nil {
		s.store = filestore.NewOSStore()
	}
	if s.logger == nil {
		s.logger = NullLogger
	}
	if s.now == nil {
		s.now = time.Now
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}
	s.doc = document.New(document.WithTabStop(cfg.TabStop))
	s.view = viewport.New(1, 1)
	s.comp = compositor.New(compositor.Config{
		Banner: [2]string{
			"Tern editor -- version " + version,
			"a small terminal text editor",
		},
		Style:          style,
		MessageTimeout: cfg.MessageTimeout.Std(),
		Now:            s.now,
	})
	s.keys = key.NewDecoder(s.driver,
		key.WithTimeout(cfg.PollTimeout.Std()),
		key.WithDegradeHook(func(seq []byte) {
			s.logger.Debug("unrecognized escape sequence %q", seq)
		}),
	)

	if cfg.Script != "" {
		hooks, err := lua.Load(cfg.Script, scriptHost{s})
		if err != nil {
			s.logger.WithComponent("hooks").Warn("%v", err)
			s.setStatus("Hook script error: %v", err)
		} else {
			s.hooks = hooks
		}
	}

	s.setStatus("HELP: %s = save | %s = quit | %s = find",
		key.ControlName(bindings.Save),
		key.ControlName(bindings.Quit),
		key.ControlName(bindings.Find))
	return s, nil
}

// Open loads path into the session. Any failure, including a missing
// file, is returned; the caller must not enter the edit loop after it.
func (s *Session) Open(path string) error {
	lines, err := s.store.ReadAllLines(path)
	if err != nil {
		s.logger.Error("open %s: %v", path, err)
		return NewOperationError("open", path, err)
	}

	s.doc = document.FromLines(lines, document.WithTabStop(s.cfg.TabStop))
	s.view = viewport.New(1, 1)
	s.filename = path
	s.logger.Info("opened %s (%d lines)", path, len(lines))

	s.startWatch()
	if s.hooks != nil {
		s.runHook(s.hooks.OnOpen(path, lines))
	}
	return nil
}

// Run enters raw mode and processes keys until the user quits or a
// termination signal arrives. It always restores the terminal and
// returns ErrQuit on a normal exit.
func (s *Session) Run() (err error) {
	if err := s.driver.EnterRawMode(); err != nil {
		return NewComponentError("terminal", "enter raw mode", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
		_, _ = s.driver.Write(compositor.ClearScreen())
		if rerr := s.driver.RestoreMode(); rerr != nil && err == ErrQuit {
			err = NewComponentError("terminal", "restore mode", rerr)
		}
		s.logger.Info("session ended: %v", err)
	}()

	for {
		if err := s.step(); err != nil {
			return err
		}
	}
}

// step runs one loop iteration: check signals and the watcher, repaint,
// then read and handle at most one key.
func (s *Session) step() error {
	if err := s.checkSignal(); err != nil {
		return err
	}
	s.pollWatch()
	if err := s.refresh(); err != nil {
		return err
	}
	k, err := s.readKey()
	if err != nil {
		return err
	}
	return s.processKey(k)
}

func (s *Session) checkSignal() error {
	select {
	case sig := <-s.signals:
		s.logger.Info("received %v", sig)
		return ErrQuit
	default:
		return nil
	}
}

func (s *Session) readKey() (key.Event, error) {
	k, err := s.keys.ReadKey()
	if err != nil {
		return key.None(), NewComponentError("terminal", "read", err)
	}
	return k, nil
}

// refresh scrolls the viewport to the cursor and writes one frame.
func (s *Session) refresh() error {
	rows, cols, err := s.driver.Size()
	if err != nil {
		return NewComponentError("terminal", "size", err)
	}
	s.view.Resize(rows-compositor.ReservedRows, cols)
	s.view.Scroll(s.doc)

	frame := s.comp.Render(compositor.Frame{
		Doc:         s.doc,
		View:        s.view,
		Filename:    s.filename,
		Message:     s.status,
		MessageTime: s.statusAt,
	})
	if _, err := s.driver.Write(frame); err != nil {
		return NewComponentError("terminal", "write", err)
	}
	return nil
}

func (s *Session) setStatus(format string, args ...any) {
	s.status = fmt.Sprintf(format, args...)
	s.statusAt = s.now()
}

// Close releases the watcher and hook script.
func (s *Session) Close() error {
	var errs ErrorList
	if s.watcher != nil {
		errs.Add(s.watcher.Close())
		s.watcher = nil
	}
	if s.hooks != nil {
		errs.Add(s.hooks.Close())
		s.hooks = nil
	}
	return errs.AsError()
}

// Document returns the session's document.
func (s *Session) Document() *document.Document { return s.doc }

// View returns the session's viewport.
func (s *Session) View() *viewport.Viewport { return s.view }

// Filename returns the document's file name, empty when untitled.
func (s *Session) Filename() string { return s.filename }

// Status returns the current status message.
func (s *Session) Status() string { return s.status }
