// Package filestore reads and writes whole files for the editor.
package filestore

import (
	"bufio"
	"bytes"
	"os"
)

// Store is the storage capability the editor consumes. Both operations
// are whole-file and synchronous.
type Store interface {
	// ReadAllLines returns the file's lines without line terminators.
	ReadAllLines(path string) ([]string, error)

	// WriteAll replaces the file's content and returns the number of
	// bytes written.
	WriteAll(path string, content []byte) (int, error)
}

// OSStore is a Store backed by the local file system.
type OSStore struct {
	// Perm is the mode for newly created files. Defaults to 0644.
	Perm os.FileMode
}

// NewOSStore creates an OSStore.
func NewOSStore() *OSStore {
	return &OSStore{Perm: 0o644}
}

// ReadAllLines reads path and splits it into lines. Both "\n" and
// "\r\n" terminate a line. A final line without a terminator is kept.
func (s *OSStore) ReadAllLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("read", path, err)
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for sc.Scan() {
		lines = append(lines, string(bytes.TrimRight(sc.Bytes(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, newError("read", path, err)
	}
	return lines, nil
}

// WriteAll opens path for writing, creating it if needed, truncates it to
// the new length and writes content.
func (s *OSStore) WriteAll(path string, content []byte) (int, error) {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, perm)
	if err != nil {
		return 0, newError("write", path, err)
	}
	defer f.Close()

	if err := f.Truncate(int64(len(content))); err != nil {
		return 0, newError("write", path, err)
	}
	n, err := f.Write(content)
	if err != nil {
		return n, newError("write", path, err)
	}
	return n, nil
}
