package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoSnapshot is returned by Slot.Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

// Slot is a single named storage location holding one opaque snapshot.
// Save replaces whatever was there before.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileSlot keeps the snapshot in <dir>/<name>.json.
type FileSlot struct {
	dir  string
	name string
}

// NewFileSlot returns a slot stored under dir. The directory is created on
// the first save.
func NewFileSlot(dir, name string) *FileSlot {
	return &FileSlot{dir: dir, name: name}
}

// Path returns the file backing the slot.
func (s *FileSlot) Path() string {
	return filepath.Join(s.dir, s.name+".json")
}

// Load reads the saved snapshot.
func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", s.Path(), err)
	}
	return data, nil
}

// Save writes the snapshot atomically: to a temp file in the same directory,
// then renamed over the previous one.
func (s *FileSlot) Save(data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// MemorySlot keeps the snapshot in memory.
type MemorySlot struct {
	data  []byte
	saves int
}

// Load returns a copy of the last saved snapshot.
func (m *MemorySlot) Load() ([]byte, error) {
	if m.data == nil {
		return nil, ErrNoSnapshot
	}
	return append([]byte(nil), m.data...), nil
}

// Save replaces the held snapshot.
func (m *MemorySlot) Save(data []byte) error {
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *MemorySlot) Saves() int {
	return m.saves
}
