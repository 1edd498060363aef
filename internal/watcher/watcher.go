// Package watcher reports modification of the open file by other
// programs.
//
// The watcher never runs callbacks. The editor calls Poll once per loop
// iteration; Poll drains pending fsnotify events without blocking and
// reports a change only when the file's size or modification time
// differs from the state recorded by the last Acknowledge. The editor
// calls Acknowledge after each of its own saves so they are not reported.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Errors returned by the watcher.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// stamp identifies one version of a file on disk.
type stamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s stamp) equal(o stamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func statStamp(path string) stamp {
	info, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// FileWatcher watches a single file.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	known   stamp
	pending bool
	closed  bool
}

// New watches path. The file's parent directory is watched so the file
// can be followed across the rename-and-replace saves many programs do.
func New(path string) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &FileWatcher{
		watcher: fsw,
		path:    absPath,
		known:   statStamp(absPath),
	}, nil
}

// Path returns the absolute path being watched.
func (w *FileWatcher) Path() string {
	return w.path
}

// Acknowledge records the file's current state as known.
func (w *FileWatcher) Acknowledge() {
	w.known = statStamp(w.path)
	w.pending = false
}

// Poll reports whether the file changed since the last Acknowledge or
// reported change. It never blocks. Errors from the underlying watcher
// are returned but do not stop it.
func (w *FileWatcher) Poll() (bool, error) {
	if w.closed {
		return false, ErrWatcherClosed
	}

	var werr error
drain:
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				break drain
			}
			if w.relevant(ev) {
				w.pending = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				break drain
			}
			werr = err
		default:
			break drain
		}
	}

	if !w.pending {
		return false, werr
	}
	w.pending = false

	current := statStamp(w.path)
	if current.equal(w.known) {
		return false, werr
	}
	w.known = current
	return true, werr
}

// relevant reports whether ev concerns the watched file's content.
func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) ||
		ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)
}

// Close stops the watcher.
func (w *FileWatcher) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
