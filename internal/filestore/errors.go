package filestore

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors classifying storage failures.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o failure")
)

// Error is a storage failure on a path.
type Error struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the classification sentinel for the underlying error, so
// errors.Is(err, ErrNotFound) works on OS errors as well.
func (e *Error) Is(target error) bool {
	return target == kind(e.Err)
}

func newError(op, path string, err error) *Error {
	return &Error{Op: op, Path: path, Err: err}
}

// kind maps an OS error onto one of the sentinels.
func kind(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrIO
	}
}

// IsNotFound reports whether err is a missing-file failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPermissionDenied reports whether err is an access failure.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
